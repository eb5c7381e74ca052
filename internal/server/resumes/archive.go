// Package resumes keeps a copy of submitted resume text in object storage.
package resumes

import (
	"context"
	"fmt"
	"time"
)

type Archive interface {
	Store(ctx context.Context, identityID, text string) error
}

// Nop discards resumes.
type Nop struct{}

func (Nop) Store(context.Context, string, string) error { return nil }

// ObjectKey lays resumes out by submission month.
func ObjectKey(identityID string, at time.Time) string {
	return fmt.Sprintf("resumes/%04d/%02d/%s.txt", at.Year(), int(at.Month()), identityID)
}
