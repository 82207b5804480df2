package models

import "time"

type Announcement struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Excerpt        string     `json:"excerpt,omitempty"`
	Content        string     `json:"content"`
	AuthorName     string     `json:"author_name,omitempty"`
	ShowOnHomepage bool       `json:"show_on_homepage"`
	IsPublished    bool       `json:"is_published"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// swagger:model CreateAnnouncementRequest
type CreateAnnouncementRequest struct {
	Title          string `json:"title"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	AuthorName     string `json:"author_name"`
	ShowOnHomepage bool   `json:"show_on_homepage"`
	Publish        bool   `json:"publish"`
}
