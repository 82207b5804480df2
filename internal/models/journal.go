package models

import "time"

type Journal struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	ShortTitle    string    `json:"short_title,omitempty"`
	Description   string    `json:"description,omitempty"`
	ISSNPrint     string    `json:"issn_print,omitempty"`
	ISSNOnline    string    `json:"issn_online,omitempty"`
	EditorInChief string    `json:"editor_in_chief,omitempty"`
	Publisher     string    `json:"publisher,omitempty"`
	Frequency     string    `json:"frequency,omitempty"`
	Subjects      []Subject `json:"subjects"`
	IsActive      bool      `json:"is_active"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasSubject проверяет принадлежность журнала предметной области по slug.
// Связь many-to-many, поэтому фильтрация всегда идёт через membership-тест.
func (j *Journal) HasSubject(subjectSlug string) bool {
	for _, s := range j.Subjects {
		if s.Slug == subjectSlug {
			return true
		}
	}
	return false
}

// swagger:model CreateJournalRequest
type CreateJournalRequest struct {
	Title         string `json:"title" example:"Journal of Applied Science"`
	Slug          string `json:"slug" example:"journal-of-applied-science"`
	ShortTitle    string `json:"short_title"`
	Description   string `json:"description"`
	ISSNPrint     string `json:"issn_print" example:"1234-5678"`
	ISSNOnline    string `json:"issn_online" example:"8765-4321"`
	EditorInChief string `json:"editor_in_chief"`
	Publisher     string `json:"publisher"`
	Frequency     string `json:"frequency" example:"Quarterly"`
	SubjectIDs    []int  `json:"subject_ids"`
	IsActive      *bool  `json:"is_active,omitempty"`
	IsFeatured    *bool  `json:"is_featured,omitempty"`
}

// JournalFilter — параметры выборки журналов (публичный список).
type JournalFilter struct {
	SubjectSlug string
	Search      string
	ISSN        string
}
