package identities

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const (
	recordKeyPrefix = "identity:"
	emailKeyPrefix  = "identity:email:"

	// putAttempts bounds optimistic-lock retries when a watched key changes
	// between read and commit.
	putAttempts = 5
)

// RedisRepository keeps each record in a hash at identity:<id> and the email
// index in plain keys at identity:email:<email>. Writes run inside
// WATCH/MULTI so the hash and index change together.
type RedisRepository struct {
	client redis.UniversalClient
}

func NewRedisRepository(client redis.UniversalClient) *RedisRepository {
	return &RedisRepository{client: client}
}

func recordKey(id string) string    { return recordKeyPrefix + id }
func emailKey(email string) string { return emailKeyPrefix + email }

func (r *RedisRepository) Put(ctx context.Context, identity *models.Identity) error {
	email := common.NormalizeEmail(identity.Email)
	key := recordKey(identity.ID)

	watched := []string{key}
	if email != "" {
		watched = append(watched, emailKey(email))
	}

	txf := func(tx *redis.Tx) error {
		prev, err := tx.HGet(ctx, key, "email").Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		if email != "" {
			owner, err := tx.Get(ctx, emailKey(email)).Result()
			switch {
			case errors.Is(err, redis.Nil):
			case err != nil:
				return err
			case owner != identity.ID:
				return common.ErrDuplicateEmail
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, toHash(identity, email))
			if prev != "" && prev != email {
				pipe.Del(ctx, emailKey(prev))
			}
			if email != "" {
				pipe.Set(ctx, emailKey(email), identity.ID, 0)
			}
			return nil
		})
		return err
	}

	for attempt := 0; attempt < putAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, watched...)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, common.ErrDuplicateEmail):
			return err
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return fmt.Errorf("redis error: %w", err)
		}
	}

	return fmt.Errorf("redis error: %w", redis.TxFailedErr)
}

func (r *RedisRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	fields, err := r.client.HGetAll(ctx, recordKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(fields) == 0 {
		return nil, common.ErrorNotFound
	}

	return fromHash(fields)
}

func (r *RedisRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	email = common.NormalizeEmail(email)
	if email == "" {
		return nil, common.ErrorNotFound
	}

	id, err := r.client.Get(ctx, emailKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func toHash(i *models.Identity, email string) map[string]any {
	return map[string]any{
		"id":            i.ID,
		"email":         email,
		"password_hash": i.PasswordHash,
		"display_name":  i.DisplayName,
		"job_title":     i.JobTitle,
		"experience":    i.Experience,
		"interests":     i.Interests,
		"resume_text":   i.ResumeText,
		"created_at":    i.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at":    i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromHash(f map[string]string) (*models.Identity, error) {
	i := &models.Identity{
		ID:           f["id"],
		Email:        f["email"],
		PasswordHash: f["password_hash"],
		DisplayName:  f["display_name"],
		JobTitle:     f["job_title"],
		Experience:   f["experience"],
		Interests:    f["interests"],
		ResumeText:   f["resume_text"],
	}

	var err error
	if i.CreatedAt, err = parseTime(f["created_at"]); err != nil {
		return nil, fmt.Errorf("redis error: created_at: %w", err)
	}
	if i.UpdatedAt, err = parseTime(f["updated_at"]); err != nil {
		return nil, fmt.Errorf("redis error: updated_at: %w", err)
	}
	return i, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
