// Package repomanager selects and owns the identity store backend named in
// the server configuration.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/greencareers/internal/server/config"
	"github.com/dmitrijs2005/greencareers/internal/server/repositories/identities"
)

// RepositoryManager vends the identity repository and releases whatever
// connection backs it.
type RepositoryManager interface {
	Identities() identities.Repository
	Close() error
}

// Open builds the manager for cfg.Storage. Networked backends are dialled and
// checked before Open returns.
func Open(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.Storage {
	case "", config.StorageMemory:
		return NewMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		return NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	case config.StorageRedis:
		return NewRedisRepositoryManager(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// MemoryRepositoryManager serves a process-local store.
type MemoryRepositoryManager struct {
	identities *identities.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{identities: identities.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Identities() identities.Repository { return m.identities }

func (m *MemoryRepositoryManager) Close() error { return m.identities.Close() }
