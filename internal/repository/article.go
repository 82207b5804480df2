package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"aethra/internal/models"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article, issueID *int) (*models.Article, error)
	List(ctx context.Context, f models.ArticleFilter, onlyPublished bool) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetBySlug(ctx context.Context, journalSlug, articleSlug string) (*models.Article, error)
	Update(ctx context.Context, a *models.Article, issueID *int) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	SetStatus(ctx context.Context, id int64, status string, publishedDate *time.Time) error
	SetPreface(ctx context.Context, id int64, isPreface bool) error
	IncrementViews(ctx context.Context, id int64) error
	IncrementDownloads(ctx context.Context, id int64) error
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

// volume_number/issue_number — денормализация через LEFT JOIN на выпуск и том.
const articleSelect = `
	SELECT a.id, a.journal_id, v.volume_number, i.issue_number,
	       a.slug, a.title, a.doi, a.article_type, a.status,
	       a.is_preface, a.is_open_access, a.is_special_issue, a.is_featured,
	       a.abstract, a.keywords, a.page_start, a.page_end,
	       a.received_date, a.accepted_date, a.published_date,
	       a.pdf_file, a.xml_file, a.epub_file, a.mobi_file, a.prc_file,
	       a.view_count, a.download_count, a.created_at, a.updated_at
	FROM articles a
	LEFT JOIN issues i  ON i.id = a.issue_id
	LEFT JOIN volumes v ON v.id = i.volume_id
`

// Белый список полей сортировки: клиент запрашивает пару поле+направление,
// произвольные выражения не допускаются.
var orderableFields = map[string]string{
	"published_date": "a.published_date",
	"title":          "a.title",
	"created_at":     "a.created_at",
}

func scanArticle(row interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	var keywordsRaw []byte
	if err := row.Scan(
		&a.ID, &a.JournalID, &a.VolumeNumber, &a.IssueNumber,
		&a.Slug, &a.Title, &a.DOI, &a.ArticleType, &a.Status,
		&a.IsPreface, &a.IsOpenAccess, &a.IsSpecialIssue, &a.IsFeatured,
		&a.Abstract, &keywordsRaw, &a.PageStart, &a.PageEnd,
		&a.ReceivedDate, &a.AcceptedDate, &a.PublishedDate,
		&a.PDFFile, &a.XMLFile, &a.EPubFile, &a.MobiFile, &a.PRCFile,
		&a.ViewCount, &a.DownloadCount, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	_ = json.Unmarshal(keywordsRaw, &a.Keywords)
	return &a, nil
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article, issueID *int) (*models.Article, error) {
	keywordsJSON, _ := json.Marshal(a.Keywords)

	const q = `
		INSERT INTO articles (journal_id, issue_id, slug, title, doi, article_type, status,
		                      is_preface, is_open_access, is_special_issue, is_featured,
		                      abstract, keywords, page_start, page_end,
		                      received_date, accepted_date, published_date,
		                      pdf_file, xml_file, epub_file, mobi_file, prc_file)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13::jsonb,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, q,
		a.JournalID, issueID, a.Slug, a.Title, a.DOI, a.ArticleType, a.Status,
		a.IsPreface, a.IsOpenAccess, a.IsSpecialIssue, a.IsFeatured,
		a.Abstract, keywordsJSON, a.PageStart, a.PageEnd,
		a.ReceivedDate, a.AcceptedDate, a.PublishedDate,
		a.PDFFile, a.XMLFile, a.EPubFile, a.MobiFile, a.PRCFile,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *articleRepo) List(ctx context.Context, f models.ArticleFilter, onlyPublished bool) ([]*models.Article, error) {
	q := articleSelect

	where := []string{}
	args := []any{}
	i := 1

	if onlyPublished {
		where = append(where, "a.status = 'published'")
	}
	if f.JournalID != nil {
		where = append(where, fmt.Sprintf("a.journal_id = $%d", i))
		args = append(args, *f.JournalID)
		i++
	}
	if f.VolumeID != nil {
		where = append(where, fmt.Sprintf("v.id = $%d", i))
		args = append(args, *f.VolumeID)
		i++
	}
	if f.IssueID != nil {
		where = append(where, fmt.Sprintf("a.issue_id = $%d", i))
		args = append(args, *f.IssueID)
		i++
	}
	if f.Search != "" {
		where = append(where, fmt.Sprintf("(a.title ILIKE $%d OR a.doi = $%d)", i, i+1))
		args = append(args, "%"+f.Search+"%", f.Search)
		i += 2
	}

	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY " + orderingClause(f.Ordering)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func orderingClause(ordering string) string {
	dir := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		dir = "DESC"
		field = ordering[1:]
	}
	col, ok := orderableFields[field]
	if !ok {
		return "a.published_date DESC NULLS LAST, a.created_at DESC"
	}
	return col + " " + dir + " NULLS LAST, a.id " + dir
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	return scanArticle(r.db.QueryRow(ctx, articleSelect+" WHERE a.id = $1", id))
}

func (r *articleRepo) GetBySlug(ctx context.Context, journalSlug, articleSlug string) (*models.Article, error) {
	const cond = `
		WHERE a.slug = $2
		  AND a.journal_id = (SELECT id FROM journals WHERE slug = $1)
	`
	return scanArticle(r.db.QueryRow(ctx, articleSelect+cond, journalSlug, articleSlug))
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article, issueID *int) error {
	keywordsJSON, _ := json.Marshal(a.Keywords)
	const q = `
		UPDATE articles
		SET issue_id=$1, slug=$2, title=$3, doi=$4, article_type=$5,
		    is_open_access=$6, is_special_issue=$7, is_featured=$8,
		    abstract=$9, keywords=$10::jsonb, page_start=$11, page_end=$12,
		    received_date=$13, accepted_date=$14,
		    pdf_file=$15, xml_file=$16, epub_file=$17, mobi_file=$18, prc_file=$19,
		    updated_at=now()
		WHERE id=$20
	`
	_, err := r.db.Exec(ctx, q,
		issueID, a.Slug, a.Title, a.DOI, a.ArticleType,
		a.IsOpenAccess, a.IsSpecialIssue, a.IsFeatured,
		a.Abstract, keywordsJSON, a.PageStart, a.PageEnd,
		a.ReceivedDate, a.AcceptedDate,
		a.PDFFile, a.XMLFile, a.EPubFile, a.MobiFile, a.PRCFile,
		a.ID,
	)
	return err
}

func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id=$1`, id)
	return err
}

func (r *articleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *articleRepo) SetStatus(ctx context.Context, id int64, status string, publishedDate *time.Time) error {
	const q = `
		UPDATE articles
		SET status = $2,
		    published_date = CASE WHEN $2 = 'published' THEN COALESCE($3, published_date) ELSE published_date END,
		    updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, q, id, status, publishedDate)
	return err
}

// SetPreface — отдельная операция: признак предисловия не выводится
// из статуса и меняется только явно.
func (r *articleRepo) SetPreface(ctx context.Context, id int64, isPreface bool) error {
	_, err := r.db.Exec(ctx,
		`UPDATE articles SET is_preface = $2, updated_at = now() WHERE id = $1`, id, isPreface)
	return err
}

func (r *articleRepo) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE articles SET view_count = view_count + 1 WHERE id = $1`, id)
	return err
}

func (r *articleRepo) IncrementDownloads(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE articles SET download_count = download_count + 1 WHERE id = $1`, id)
	return err
}
