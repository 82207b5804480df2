package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"aethra/internal/models"
)

type AnnouncementRepo struct{ db *pgxpool.Pool }

func NewAnnouncementRepo(db *pgxpool.Pool) *AnnouncementRepo { return &AnnouncementRepo{db: db} }

const announcementCols = `
	id, title, slug, excerpt, content, author_name,
	show_on_homepage, is_published, published_at, created_at, updated_at
`

func (r *AnnouncementRepo) List(ctx context.Context, onlyPublished, onlyHomepage bool) ([]*models.Announcement, error) {
	q := `SELECT ` + announcementCols + ` FROM announcements WHERE 1=1`
	if onlyPublished {
		q += ` AND is_published = true`
	}
	if onlyHomepage {
		q += ` AND show_on_homepage = true`
	}
	q += ` ORDER BY published_at DESC NULLS LAST, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.AuthorName,
			&a.ShowOnHomepage, &a.IsPublished, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *AnnouncementRepo) GetBySlug(ctx context.Context, slug string) (*models.Announcement, error) {
	q := `SELECT ` + announcementCols + ` FROM announcements WHERE slug = $1`
	var a models.Announcement
	if err := r.db.QueryRow(ctx, q, slug).Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content,
		&a.AuthorName, &a.ShowOnHomepage, &a.IsPublished, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnnouncementRepo) Create(ctx context.Context, a *models.Announcement) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO announcements (title, slug, excerpt, content, author_name,
		                           show_on_homepage, is_published, published_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		a.Title, a.Slug, a.Excerpt, a.Content, a.AuthorName,
		a.ShowOnHomepage, a.IsPublished, a.PublishedAt,
	).Scan(&id)
	return id, err
}

func (r *AnnouncementRepo) Update(ctx context.Context, a *models.Announcement) error {
	_, err := r.db.Exec(ctx, `
		UPDATE announcements
		SET title=$1, excerpt=$2, content=$3, author_name=$4,
		    show_on_homepage=$5, is_published=$6, published_at=$7, updated_at=now()
		WHERE id=$8`,
		a.Title, a.Excerpt, a.Content, a.AuthorName,
		a.ShowOnHomepage, a.IsPublished, a.PublishedAt, a.ID,
	)
	return err
}

func (r *AnnouncementRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id=$1`, id)
	return err
}

func (r *AnnouncementRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM announcements WHERE slug=$1)`, slug).Scan(&exists)
	return exists, err
}
