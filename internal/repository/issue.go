package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aethra/internal/models"
)

type IssueRepo struct{ db *pgxpool.Pool }

func NewIssueRepo(db *pgxpool.Pool) *IssueRepo { return &IssueRepo{db: db} }

const issueCols = `
	id, volume_id, issue_number, title, publication_date,
	is_special_issue, special_issue_title, is_current, is_active, created_at, updated_at
`

func (r *IssueRepo) ListByVolume(ctx context.Context, volumeID int, onlyActive bool) ([]*models.Issue, error) {
	q := `SELECT ` + issueCols + ` FROM issues WHERE volume_id = $1`
	if onlyActive {
		q += ` AND is_active = true`
	}
	q += ` ORDER BY issue_number DESC`

	rows, err := r.db.Query(ctx, q, volumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Issue
	for rows.Next() {
		var is models.Issue
		if err := rows.Scan(&is.ID, &is.VolumeID, &is.Number, &is.Title, &is.PublicationDate,
			&is.IsSpecialIssue, &is.SpecialIssueTitle, &is.IsCurrent, &is.IsActive,
			&is.CreatedAt, &is.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &is)
	}
	return list, rows.Err()
}

func (r *IssueRepo) GetByID(ctx context.Context, id int) (*models.Issue, error) {
	q := `SELECT ` + issueCols + ` FROM issues WHERE id = $1`
	var is models.Issue
	if err := r.db.QueryRow(ctx, q, id).Scan(&is.ID, &is.VolumeID, &is.Number, &is.Title,
		&is.PublicationDate, &is.IsSpecialIssue, &is.SpecialIssueTitle, &is.IsCurrent,
		&is.IsActive, &is.CreatedAt, &is.UpdatedAt); err != nil {
		return nil, err
	}
	return &is, nil
}

// Create полагается на UNIQUE (volume_id, issue_number) в БД.
// Если выпуск помечен текущим, прежний текущий выпуск журнала снимается.
func (r *IssueRepo) Create(ctx context.Context, is *models.Issue) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if is.IsCurrent {
		if err := unsetCurrentIssue(ctx, tx, is.VolumeID, 0); err != nil {
			return 0, err
		}
	}

	var id int
	err = tx.QueryRow(ctx, `
		INSERT INTO issues (volume_id, issue_number, title, publication_date,
		                    is_special_issue, special_issue_title, is_current, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		is.VolumeID, is.Number, is.Title, is.PublicationDate,
		is.IsSpecialIssue, is.SpecialIssueTitle, is.IsCurrent, is.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit(ctx)
}

func (r *IssueRepo) Update(ctx context.Context, is *models.Issue) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if is.IsCurrent {
		if err := unsetCurrentIssue(ctx, tx, is.VolumeID, is.ID); err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE issues
		SET issue_number=$1, title=$2, publication_date=$3, is_special_issue=$4,
		    special_issue_title=$5, is_current=$6, is_active=$7, updated_at=now()
		WHERE id=$8`,
		is.Number, is.Title, is.PublicationDate, is.IsSpecialIssue,
		is.SpecialIssueTitle, is.IsCurrent, is.IsActive, is.ID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// unsetCurrentIssue снимает флаг is_current со всех выпусков того же журнала.
func unsetCurrentIssue(ctx context.Context, tx pgx.Tx, volumeID, exceptID int) error {
	_, err := tx.Exec(ctx, `
		UPDATE issues SET is_current = false
		WHERE is_current = true
		  AND id <> $2
		  AND volume_id IN (
			SELECT id FROM volumes
			WHERE journal_id = (SELECT journal_id FROM volumes WHERE id = $1)
		  )`,
		volumeID, exceptID,
	)
	return err
}

func (r *IssueRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM issues WHERE id=$1`, id)
	return err
}

func (r *IssueRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM issues WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}
