package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"aethra/internal/models"
)

type SubjectRepo struct{ db *pgxpool.Pool }

func NewSubjectRepo(db *pgxpool.Pool) *SubjectRepo { return &SubjectRepo{db: db} }

func (r *SubjectRepo) List(ctx context.Context, onlyActive bool) ([]models.Subject, error) {
	q := `
		SELECT id, name, slug, description, display_order, is_active, created_at, updated_at
		FROM subjects
	`
	if onlyActive {
		q += ` WHERE is_active = true`
	}
	q += ` ORDER BY display_order, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.DisplayOrder,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubjectRepo) GetByID(ctx context.Context, id int) (*models.Subject, error) {
	const q = `
		SELECT id, name, slug, description, display_order, is_active, created_at, updated_at
		FROM subjects WHERE id = $1
	`
	var s models.Subject
	if err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.Slug, &s.Description,
		&s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubjectRepo) Create(ctx context.Context, s *models.Subject) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO subjects (name, slug, description, display_order, is_active)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		s.Name, s.Slug, s.Description, s.DisplayOrder, s.IsActive,
	).Scan(&id)
	return id, err
}

func (r *SubjectRepo) Update(ctx context.Context, s *models.Subject) error {
	_, err := r.db.Exec(ctx,
		`UPDATE subjects SET name=$1, slug=$2, description=$3, display_order=$4, is_active=$5, updated_at=now()
		 WHERE id=$6`,
		s.Name, s.Slug, s.Description, s.DisplayOrder, s.IsActive, s.ID,
	)
	return err
}

func (r *SubjectRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id=$1`, id)
	return err
}

func (r *SubjectRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM subjects WHERE slug=$1)`, slug).Scan(&exists)
	return exists, err
}
