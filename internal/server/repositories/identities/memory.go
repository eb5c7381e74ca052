package identities

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
)

// MemoryRepository keeps records in process memory. A single RWMutex guards
// both maps so readers never see a record and an email index that disagree.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*models.Identity
	emails  map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]*models.Identity),
		emails:  make(map[string]string),
	}
}

func (r *MemoryRepository) Put(ctx context.Context, identity *models.Identity) error {
	email := common.NormalizeEmail(identity.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if email != "" {
		if owner, ok := r.emails[email]; ok && owner != identity.ID {
			return common.ErrDuplicateEmail
		}
	}

	if prev, ok := r.records[identity.ID]; ok && prev.Email != "" && prev.Email != email {
		delete(r.emails, prev.Email)
	}

	stored := identity.Clone()
	stored.Email = email
	r.records[identity.ID] = stored
	if email != "" {
		r.emails[email] = identity.ID
	}

	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return identity.Clone(), nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	email = common.NormalizeEmail(email)
	if email == "" {
		return nil, common.ErrorNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.records[id].Clone(), nil
}

// Close is a no-op; it lets MemoryRepository satisfy the same lifecycle as
// the networked backends.
func (r *MemoryRepository) Close() error { return nil }
