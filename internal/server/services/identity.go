// Package services contains server-side business logic. This file implements
// IdentityService: signup, login, token issuance, profile submission and
// token resolution over an identities.Repository.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/logging"
	"github.com/dmitrijs2005/greencareers/internal/server/auth"
	"github.com/dmitrijs2005/greencareers/internal/server/config"
	"github.com/dmitrijs2005/greencareers/internal/server/events"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
	"github.com/dmitrijs2005/greencareers/internal/server/repositories/identities"
	"github.com/dmitrijs2005/greencareers/internal/server/resumes"
	"github.com/google/uuid"
)

type PasswordHasher interface {
	Hash(plain string) string
	Verify(plain, encoded string) bool
}

type TokenCodec interface {
	Issue(claims auth.TokenClaims, ttl time.Duration) (string, error)
	Verify(token string) (*auth.TokenClaims, error)
}

// IdentityService owns the identity lifecycle. Errors it returns are either
// one of the identity sentinels in internal/common or wrap
// common.ErrorInternal.
type IdentityService struct {
	repo      identities.Repository
	hasher    PasswordHasher
	codec     TokenCodec
	tokenTTL  time.Duration
	publisher events.Publisher
	archive   resumes.Archive
	logger    logging.Logger
	now       func() time.Time

	// verified against on unknown emails so both login failures cost the same
	dummyHash string
}

type IdentityOption func(*IdentityService)

func WithPublisher(p events.Publisher) IdentityOption {
	return func(s *IdentityService) { s.publisher = p }
}

func WithArchive(a resumes.Archive) IdentityOption {
	return func(s *IdentityService) { s.archive = a }
}

func WithLogger(l logging.Logger) IdentityOption {
	return func(s *IdentityService) { s.logger = l }
}

// NewIdentityService wires the service. Token lifetime comes from
// cfg.AccessTokenValidityDuration.
func NewIdentityService(repo identities.Repository, h PasswordHasher, c TokenCodec, cfg *config.Config, opts ...IdentityOption) *IdentityService {
	s := &IdentityService{
		repo:      repo,
		hasher:    h,
		codec:     c,
		tokenTTL:  cfg.AccessTokenValidityDuration,
		publisher: events.Nop{},
		archive:   resumes.Nop{},
		logger:    logging.Nop{},
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("module", "identity_service")
	s.dummyHash = h.Hash(string(common.GenerateRandByteArray(16)))
	return s
}

// Signup creates a credential-only record. The email is stored normalized.
func (s *IdentityService) Signup(ctx context.Context, email, password, displayName string) (*models.Identity, error) {
	email = common.NormalizeEmail(email)
	if !validEmail(email) || password == "" {
		return nil, common.ErrInvalidSignup
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, internal(err)
	}

	now := s.now().UTC()
	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: s.hasher.Hash(password),
		DisplayName:  strings.TrimSpace(displayName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// the store re-checks email ownership atomically; a racing signup loses here
	if err := s.repo.Put(ctx, identity); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, internal(err)
	}

	s.logger.Info(ctx, "identity signed up", "id", identity.ID)
	s.publish(ctx, events.Event{Type: events.TypeSignedUp, IdentityID: identity.ID, Email: identity.Email, OccurredAt: now})

	return identity, nil
}

// Login returns the record whose credentials match. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	identity, err := s.repo.GetByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, internal(err)
	}

	if !identity.HasCredentials() {
		s.hasher.Verify(password, s.dummyHash)
		return nil, common.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, identity.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return identity, nil
}

// IssueToken mints a bearer token for identity valid for the configured
// lifetime.
func (s *IdentityService) IssueToken(identity *models.Identity) (string, error) {
	token, err := s.codec.Issue(auth.TokenClaims{SubjectID: identity.ID, Email: identity.Email}, s.tokenTTL)
	if err != nil {
		return "", internal(err)
	}
	return token, nil
}

// SubmitProfile creates a profile-only record when id is empty, or replaces
// the profile fields of the existing record id. Credential fields are never
// touched. An id with no record behind it yields common.ErrUserNotFound.
func (s *IdentityService) SubmitProfile(ctx context.Context, id string, p models.Profile) (*models.Identity, error) {
	p = trimProfile(p)
	if p.JobTitle == "" {
		return nil, common.ErrInvalidProfile
	}

	now := s.now().UTC()

	var identity *models.Identity
	if id == "" {
		identity = &models.Identity{ID: uuid.NewString(), CreatedAt: now}
	} else {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrUserNotFound
			}
			return nil, internal(err)
		}
		identity = existing
	}

	identity.JobTitle = p.JobTitle
	identity.Experience = p.Experience
	identity.Interests = p.Interests
	identity.ResumeText = p.ResumeText
	identity.UpdatedAt = now

	if err := s.repo.Put(ctx, identity); err != nil {
		return nil, internal(err)
	}

	// The stored record is authoritative; the archive copy is best effort.
	if p.ResumeText != "" {
		if err := s.archive.Store(ctx, identity.ID, p.ResumeText); err != nil {
			s.logger.Warn(ctx, "resume archive failed", "id", identity.ID, "error", err)
		}
	}

	s.logger.Info(ctx, "profile submitted", "id", identity.ID, "new", id == "")
	s.publish(ctx, events.Event{Type: events.TypeProfileSubmitted, IdentityID: identity.ID, JobTitle: identity.JobTitle, OccurredAt: now})

	return identity, nil
}

// ResolveFromToken verifies token and loads the record it names.
func (s *IdentityService) ResolveFromToken(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	return s.GetIdentity(ctx, claims.SubjectID)
}

// GetIdentity loads a record by id, mapping absence to common.ErrUserNotFound.
func (s *IdentityService) GetIdentity(ctx context.Context, id string) (*models.Identity, error) {
	identity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, internal(err)
	}
	return identity, nil
}

func (s *IdentityService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Warn(ctx, "event publish failed", "type", e.Type, "id", e.IdentityID, "error", err)
	}
}

func trimProfile(p models.Profile) models.Profile {
	return models.Profile{
		JobTitle:   strings.TrimSpace(p.JobTitle),
		Experience: strings.TrimSpace(p.Experience),
		Interests:  strings.TrimSpace(p.Interests),
		ResumeText: strings.TrimSpace(p.ResumeText),
	}
}

// validEmail accepts a bare addr-spec, no display name or angle brackets.
func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// internal hides cause from errors.Is while keeping it in the message for logs.
func internal(cause error) error {
	return fmt.Errorf("%w: %v", common.ErrorInternal, cause)
}
