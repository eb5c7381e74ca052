package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/dbx"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Put upserts the record in one statement; the unique index on email makes
// the write and the index update atomic.
func (r *PostgresRepository) Put(ctx context.Context, identity *models.Identity) error {
	query :=
		`INSERT INTO identities (id, email, password_hash, display_name, job_title, experience, interests, resume_text, created_at, updated_at)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   email = EXCLUDED.email,
		   password_hash = EXCLUDED.password_hash,
		   display_name = EXCLUDED.display_name,
		   job_title = EXCLUDED.job_title,
		   experience = EXCLUDED.experience,
		   interests = EXCLUDED.interests,
		   resume_text = EXCLUDED.resume_text,
		   updated_at = EXCLUDED.updated_at
		 `

	_, err := r.db.ExecContext(ctx, query,
		identity.ID,
		common.NormalizeEmail(identity.Email),
		identity.PasswordHash,
		identity.DisplayName,
		identity.JobTitle,
		identity.Experience,
		identity.Interests,
		identity.ResumeText,
		identity.CreatedAt,
		identity.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

const selectIdentity = `SELECT id::text, COALESCE(email, ''), COALESCE(password_hash, ''), COALESCE(display_name, ''),
		 COALESCE(job_title, ''), COALESCE(experience, ''), COALESCE(interests, ''), COALESCE(resume_text, ''),
		 created_at, updated_at
		 FROM identities`

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	return r.getOne(ctx, selectIdentity+`
		 WHERE id = $1
		 `, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	email = common.NormalizeEmail(email)
	if email == "" {
		return nil, common.ErrorNotFound
	}
	return r.getOne(ctx, selectIdentity+`
		 WHERE email = $1
		 `, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.Identity, error) {
	i := &models.Identity{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&i.ID, &i.Email, &i.PasswordHash, &i.DisplayName,
		&i.JobTitle, &i.Experience, &i.Interests, &i.ResumeText,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return i, nil
}
