package models

import "time"

// Статусы жизненного цикла статьи: draft -> published | archive.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchive   = "archive"
)

// Типы статей (подмножество из оригинального каталога).
const (
	TypeResearch           = "research"
	TypeReview             = "review"
	TypeCaseReport         = "case_report"
	TypeShortCommunication = "short_communication"
	TypeLetter             = "letter"
	TypeEditorial          = "editorial"
	TypeOther              = "other"
)

type Article struct {
	ID        int64 `db:"id"         json:"id"`
	JournalID int   `db:"journal_id" json:"journal_id"`
	// Денормализованные номера тома/выпуска: берутся из связанного выпуска,
	// могут отсутствовать у статей вне выпусков.
	VolumeNumber *int `db:"volume_number" json:"volume_number,omitempty"`
	IssueNumber  *int `db:"issue_number"  json:"issue_number,omitempty"`

	Slug        string `db:"slug"         json:"slug"`
	Title       string `db:"title"        json:"title"`
	DOI         string `db:"doi"          json:"doi,omitempty"`
	ArticleType string `db:"article_type" json:"article_type"`
	Status      string `db:"status"       json:"status"`

	IsPreface      bool `db:"is_preface"       json:"is_preface"`
	IsOpenAccess   bool `db:"is_open_access"   json:"is_open_access"`
	IsSpecialIssue bool `db:"is_special_issue" json:"is_special_issue"`
	IsFeatured     bool `db:"is_featured"      json:"is_featured"`

	Abstract  string   `db:"abstract"   json:"abstract,omitempty"`
	Keywords  []string `db:"-"          json:"keywords"`
	PageStart string   `db:"page_start" json:"page_start,omitempty"`
	PageEnd   string   `db:"page_end"   json:"page_end,omitempty"`

	ReceivedDate  *time.Time `db:"received_date"  json:"received_date,omitempty"`
	AcceptedDate  *time.Time `db:"accepted_date"  json:"accepted_date,omitempty"`
	PublishedDate *time.Time `db:"published_date" json:"published_date,omitempty"`

	// Файлы представлений. Пустое поле означает, что формат недоступен;
	// форматы скачивания выводятся строго из наличия значения.
	PDFFile  string `db:"pdf_file"  json:"pdf_file,omitempty"`
	XMLFile  string `db:"xml_file"  json:"xml_file,omitempty"`
	EPubFile string `db:"epub_file" json:"epub_file,omitempty"`
	MobiFile string `db:"mobi_file" json:"mobi_file,omitempty"`
	PRCFile  string `db:"prc_file"  json:"prc_file,omitempty"`

	ViewCount     int `db:"view_count"     json:"view_count"`
	DownloadCount int `db:"download_count" json:"download_count"`

	Authors []Authorship `db:"-" json:"authors"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	JournalID   int      `json:"journal_id"`
	IssueID     *int     `json:"issue_id,omitempty"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title" example:"CRISPR off-target effects revisited"`
	DOI         string   `json:"doi" example:"10.1000/xyz123"`
	ArticleType string   `json:"article_type" example:"research"`
	Abstract    string   `json:"abstract"`
	Keywords    []string `json:"keywords"`
	PageStart   string   `json:"page_start"`
	PageEnd     string   `json:"page_end"`

	IsOpenAccess   *bool `json:"is_open_access,omitempty"`
	IsSpecialIssue *bool `json:"is_special_issue,omitempty"`
	IsFeatured     *bool `json:"is_featured,omitempty"`

	PDFFile  string `json:"pdf_file"`
	XMLFile  string `json:"xml_file"`
	EPubFile string `json:"epub_file"`
	MobiFile string `json:"mobi_file"`
	PRCFile  string `json:"prc_file"`
}

// swagger:model SetArticleStatusRequest
type SetArticleStatusRequest struct {
	Status        string     `json:"status" example:"published"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}

// swagger:model SetPrefaceRequest
type SetPrefaceRequest struct {
	IsPreface bool `json:"is_preface"`
}

// ArticleFilter — параметры выборки статей.
// Ordering передаётся как имя поля, префикс "-" означает убывание.
type ArticleFilter struct {
	JournalID *int
	VolumeID  *int
	IssueID   *int
	Search    string
	Ordering  string
}
