package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"aethra/internal/models"
)

type VolumeRepo struct{ db *pgxpool.Pool }

func NewVolumeRepo(db *pgxpool.Pool) *VolumeRepo { return &VolumeRepo{db: db} }

const volumeCols = `
	id, journal_id, volume_number, title, year, description,
	is_archived, is_active, created_at, updated_at
`

func (r *VolumeRepo) ListByJournal(ctx context.Context, journalID int, onlyActive bool) ([]*models.Volume, error) {
	q := `SELECT ` + volumeCols + ` FROM volumes WHERE journal_id = $1`
	if onlyActive {
		q += ` AND is_active = true`
	}
	q += ` ORDER BY year DESC, volume_number DESC`

	rows, err := r.db.Query(ctx, q, journalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Volume
	for rows.Next() {
		var v models.Volume
		if err := rows.Scan(&v.ID, &v.JournalID, &v.VolumeNumber, &v.Title, &v.Year,
			&v.Description, &v.IsArchived, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (r *VolumeRepo) GetByID(ctx context.Context, id int) (*models.Volume, error) {
	q := `SELECT ` + volumeCols + ` FROM volumes WHERE id = $1`
	var v models.Volume
	if err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.JournalID, &v.VolumeNumber, &v.Title,
		&v.Year, &v.Description, &v.IsArchived, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create полагается на UNIQUE (journal_id, volume_number) в БД:
// уникальность номера тома в журнале на клиенте не проверяется.
func (r *VolumeRepo) Create(ctx context.Context, v *models.Volume) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO volumes (journal_id, volume_number, title, year, description, is_archived, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		v.JournalID, v.VolumeNumber, v.Title, v.Year, v.Description, v.IsArchived, v.IsActive,
	).Scan(&id)
	return id, err
}

func (r *VolumeRepo) Update(ctx context.Context, v *models.Volume) error {
	_, err := r.db.Exec(ctx, `
		UPDATE volumes
		SET volume_number=$1, title=$2, year=$3, description=$4, is_archived=$5, is_active=$6, updated_at=now()
		WHERE id=$7`,
		v.VolumeNumber, v.Title, v.Year, v.Description, v.IsArchived, v.IsActive, v.ID,
	)
	return err
}

func (r *VolumeRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM volumes WHERE id=$1`, id)
	return err
}

func (r *VolumeRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM volumes WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}
