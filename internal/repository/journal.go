package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"aethra/internal/models"
)

type JournalRepo struct{ db *pgxpool.Pool }

func NewJournalRepo(db *pgxpool.Pool) *JournalRepo { return &JournalRepo{db: db} }

const journalCols = `
	j.id, j.title, j.slug, j.short_title, j.description,
	j.issn_print, j.issn_online, j.editor_in_chief, j.publisher, j.frequency,
	j.is_active, j.is_featured, j.created_at, j.updated_at
`

func (r *JournalRepo) List(ctx context.Context, f models.JournalFilter, onlyActive bool) ([]*models.Journal, error) {
	q := `SELECT ` + journalCols + ` FROM journals j`

	where := []string{}
	args := []any{}
	i := 1

	if onlyActive {
		where = append(where, "j.is_active = true")
	}
	if f.SubjectSlug != "" {
		// связь many-to-many: фильтр по принадлежности предметной области
		where = append(where, fmt.Sprintf(`
			EXISTS (
				SELECT 1 FROM journal_subjects js
				JOIN subjects s ON s.id = js.subject_id
				WHERE js.journal_id = j.id AND s.slug = $%d
			)
		`, i))
		args = append(args, f.SubjectSlug)
		i++
	}
	if f.Search != "" {
		where = append(where, fmt.Sprintf("(j.title ILIKE $%d OR j.short_title ILIKE $%d)", i, i))
		args = append(args, "%"+f.Search+"%")
		i++
	}
	if f.ISSN != "" {
		where = append(where, fmt.Sprintf("(j.issn_print = $%d OR j.issn_online = $%d)", i, i))
		args = append(args, f.ISSN)
		i++
	}

	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY j.title"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Journal
	for rows.Next() {
		var j models.Journal
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Slug, &j.ShortTitle, &j.Description,
			&j.ISSNPrint, &j.ISSNOnline, &j.EditorInChief, &j.Publisher, &j.Frequency,
			&j.IsActive, &j.IsFeatured, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, j := range list {
		subs, err := r.subjectsOf(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		j.Subjects = subs
	}
	return list, nil
}

func (r *JournalRepo) GetByID(ctx context.Context, id int) (*models.Journal, error) {
	return r.getOne(ctx, "j.id = $1", id)
}

func (r *JournalRepo) GetBySlug(ctx context.Context, slug string) (*models.Journal, error) {
	return r.getOne(ctx, "j.slug = $1", slug)
}

func (r *JournalRepo) getOne(ctx context.Context, cond string, arg any) (*models.Journal, error) {
	q := `SELECT ` + journalCols + ` FROM journals j WHERE ` + cond
	var j models.Journal
	if err := r.db.QueryRow(ctx, q, arg).Scan(
		&j.ID, &j.Title, &j.Slug, &j.ShortTitle, &j.Description,
		&j.ISSNPrint, &j.ISSNOnline, &j.EditorInChief, &j.Publisher, &j.Frequency,
		&j.IsActive, &j.IsFeatured, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	subs, err := r.subjectsOf(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	j.Subjects = subs
	return &j, nil
}

func (r *JournalRepo) subjectsOf(ctx context.Context, journalID int) ([]models.Subject, error) {
	const q = `
		SELECT s.id, s.name, s.slug, s.description, s.display_order, s.is_active, s.created_at, s.updated_at
		FROM subjects s
		JOIN journal_subjects js ON js.subject_id = s.id
		WHERE js.journal_id = $1
		ORDER BY s.display_order, s.name
	`
	rows, err := r.db.Query(ctx, q, journalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Subject{}
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

func (r *JournalRepo) Create(ctx context.Context, j *models.Journal, subjectIDs []int) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx, `
		INSERT INTO journals (title, slug, short_title, description, issn_print, issn_online,
		                      editor_in_chief, publisher, frequency, is_active, is_featured)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id`,
		j.Title, j.Slug, j.ShortTitle, j.Description, j.ISSNPrint, j.ISSNOnline,
		j.EditorInChief, j.Publisher, j.Frequency, j.IsActive, j.IsFeatured,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, sid := range subjectIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO journal_subjects (journal_id, subject_id) VALUES ($1,$2)`, id, sid); err != nil {
			return 0, err
		}
	}

	return id, tx.Commit(ctx)
}

func (r *JournalRepo) Update(ctx context.Context, j *models.Journal, subjectIDs []int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE journals
		SET title=$1, slug=$2, short_title=$3, description=$4, issn_print=$5, issn_online=$6,
		    editor_in_chief=$7, publisher=$8, frequency=$9, is_active=$10, is_featured=$11,
		    updated_at=now()
		WHERE id=$12`,
		j.Title, j.Slug, j.ShortTitle, j.Description, j.ISSNPrint, j.ISSNOnline,
		j.EditorInChief, j.Publisher, j.Frequency, j.IsActive, j.IsFeatured, j.ID,
	)
	if err != nil {
		return err
	}

	// Набор предметных областей заменяется целиком.
	if subjectIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM journal_subjects WHERE journal_id=$1`, j.ID); err != nil {
			return err
		}
		for _, sid := range subjectIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO journal_subjects (journal_id, subject_id) VALUES ($1,$2)`, j.ID, sid); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *JournalRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM journals WHERE id=$1`, id)
	return err
}

func (r *JournalRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM journals WHERE slug=$1)`, slug).Scan(&exists)
	return exists, err
}
