package models

import "time"

type Issue struct {
	ID                int        `json:"id"`
	VolumeID          int        `json:"volume_id"`
	Number            int        `json:"number"`
	Title             string     `json:"title,omitempty"`
	PublicationDate   *time.Time `json:"publication_date,omitempty"`
	IsSpecialIssue    bool       `json:"is_special_issue"`
	SpecialIssueTitle string     `json:"special_issue_title,omitempty"`
	IsCurrent         bool       `json:"is_current"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// swagger:model CreateIssueRequest
type CreateIssueRequest struct {
	VolumeID          int    `json:"volume_id"`
	Number            int    `json:"number" example:"3"`
	Title             string `json:"title"`
	IsSpecialIssue    *bool  `json:"is_special_issue,omitempty"`
	SpecialIssueTitle string `json:"special_issue_title"`
	IsCurrent         *bool  `json:"is_current,omitempty"`
}
