package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"aethra/internal/models"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
		SELECT id, email, full_name, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1
	`
	var u models.User
	if err := r.db.QueryRow(ctx, q, email).Scan(&u.ID, &u.Email, &u.FullName,
		&u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	const q = `
		SELECT id, email, full_name, password_hash, role, created_at, updated_at
		FROM users WHERE id = $1
	`
	var u models.User
	if err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Email, &u.FullName,
		&u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveRefreshToken хранит один действующий refresh-токен на пользователя.
func (r *UserRepo) SaveRefreshToken(ctx context.Context, userID int, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (user_id) DO UPDATE SET token = $2, expires_at = $3`,
		userID, token, expiresAt,
	)
	return err
}

func (r *UserRepo) IsRefreshTokenValid(ctx context.Context, userID int, token string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM refresh_tokens
			WHERE user_id = $1 AND token = $2 AND expires_at > now()
		)`, userID, token,
	).Scan(&ok)
	return ok, err
}

func (r *UserRepo) DeleteRefreshToken(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}
