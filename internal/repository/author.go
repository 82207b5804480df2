package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"aethra/internal/models"
)

type AuthorRepo interface {
	Create(ctx context.Context, a *models.Author) (int, error)
	Update(ctx context.Context, a *models.Author) error
	GetByID(ctx context.Context, id int) (*models.Author, error)
	List(ctx context.Context, search string) ([]*models.Author, error)
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	ListByArticle(ctx context.Context, articleID int64) ([]models.Authorship, error)
	ReplaceArticleAuthors(ctx context.Context, articleID int64, entries []models.AuthorshipEntry) error
}

type authorRepo struct{ db *pgxpool.Pool }

func NewAuthorRepo(db *pgxpool.Pool) AuthorRepo { return &authorRepo{db: db} }

const authorCols = `
	id, first_name, last_name, full_name, email, orcid_id,
	affiliation, department, country, bio, created_at, updated_at
`

func (r *authorRepo) Create(ctx context.Context, a *models.Author) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO authors (first_name, last_name, full_name, email, orcid_id,
		                     affiliation, department, country, bio)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`,
		a.FirstName, a.LastName, a.FullName, a.Email, a.OrcidID,
		a.Affiliation, a.Department, a.Country, a.Bio,
	).Scan(&id)
	return id, err
}

func (r *authorRepo) Update(ctx context.Context, a *models.Author) error {
	_, err := r.db.Exec(ctx, `
		UPDATE authors
		SET first_name=$1, last_name=$2, full_name=$3, email=$4, orcid_id=$5,
		    affiliation=$6, department=$7, country=$8, bio=$9, updated_at=now()
		WHERE id=$10`,
		a.FirstName, a.LastName, a.FullName, a.Email, a.OrcidID,
		a.Affiliation, a.Department, a.Country, a.Bio, a.ID,
	)
	return err
}

func (r *authorRepo) GetByID(ctx context.Context, id int) (*models.Author, error) {
	q := `SELECT ` + authorCols + ` FROM authors WHERE id = $1`
	var a models.Author
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.FullName, &a.Email, &a.OrcidID,
		&a.Affiliation, &a.Department, &a.Country, &a.Bio, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *authorRepo) List(ctx context.Context, search string) ([]*models.Author, error) {
	q := `SELECT ` + authorCols + ` FROM authors`
	args := []any{}
	if search != "" {
		q += ` WHERE full_name ILIKE $1 OR email ILIKE $1 OR orcid_id = $2`
		args = append(args, "%"+search+"%", search)
	}
	q += ` ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Author
	for rows.Next() {
		var a models.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.FullName, &a.Email, &a.OrcidID,
			&a.Affiliation, &a.Department, &a.Country, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *authorRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id=$1`, id)
	return err
}

func (r *authorRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}

func (r *authorRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Authorship, error) {
	const q = `
		SELECT aa.article_id, aa.author_id, aa.author_order, aa.is_corresponding, aa.author_contribution,
		       a.id, a.first_name, a.last_name, a.full_name, a.email, a.orcid_id,
		       a.affiliation, a.department, a.country, a.bio, a.created_at, a.updated_at
		FROM article_authors aa
		JOIN authors a ON a.id = aa.author_id
		WHERE aa.article_id = $1
		ORDER BY aa.author_order
	`
	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Authorship{}
	for rows.Next() {
		var as models.Authorship
		if err := rows.Scan(
			&as.ArticleID, &as.AuthorID, &as.AuthorOrder, &as.IsCorresponding, &as.AuthorContribution,
			&as.Author.ID, &as.Author.FirstName, &as.Author.LastName, &as.Author.FullName,
			&as.Author.Email, &as.Author.OrcidID, &as.Author.Affiliation, &as.Author.Department,
			&as.Author.Country, &as.Author.Bio, &as.Author.CreatedAt, &as.Author.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, as)
	}
	return out, rows.Err()
}

// ReplaceArticleAuthors заменяет список авторов статьи целиком в одной
// транзакции. Порядок перенумеровывается по позиции в списке: 1..N.
func (r *authorRepo) ReplaceArticleAuthors(ctx context.Context, articleID int64, entries []models.AuthorshipEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM article_authors WHERE article_id=$1`, articleID); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(entries))
	for pos, e := range entries {
		if _, dup := seen[e.AuthorID]; dup {
			return fmt.Errorf("автор %d указан дважды", e.AuthorID)
		}
		seen[e.AuthorID] = struct{}{}

		if _, err := tx.Exec(ctx, `
			INSERT INTO article_authors (article_id, author_id, author_order, is_corresponding, author_contribution)
			VALUES ($1,$2,$3,$4,$5)`,
			articleID, e.AuthorID, pos+1, e.IsCorresponding, e.AuthorContribution,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
