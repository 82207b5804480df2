package models

import "time"

type Volume struct {
	ID           int       `json:"id"`
	JournalID    int       `json:"journal_id"`
	VolumeNumber int       `json:"volume_number"`
	Title        string    `json:"title,omitempty"`
	Year         int       `json:"year"`
	Description  string    `json:"description,omitempty"`
	IsArchived   bool      `json:"is_archived"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// swagger:model CreateVolumeRequest
type CreateVolumeRequest struct {
	JournalID    int    `json:"journal_id"`
	VolumeNumber int    `json:"volume_number" example:"12"`
	Title        string `json:"title"`
	Year         int    `json:"year" example:"2026"`
	Description  string `json:"description"`
	IsArchived   *bool  `json:"is_archived,omitempty"`
}
