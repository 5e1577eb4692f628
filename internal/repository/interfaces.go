package repository

import (
	"context"
	"errors"

	"github.com/mkowalczyk/briefdesk/internal/domain"
)

// ErrNotFound is returned when no brief matches the given id or prefix.
var ErrNotFound = errors.New("brief not found")

// ErrAmbiguousPrefix is returned when a short id prefix matches more than one
// brief.
var ErrAmbiguousPrefix = errors.New("brief id prefix is ambiguous")

type BriefRepo interface {
	Create(ctx context.Context, r *domain.BriefRecord) error
	GetByID(ctx context.Context, id string) (*domain.BriefRecord, error)
	// GetByPrefix resolves a short display id (any unique id prefix).
	GetByPrefix(ctx context.Context, prefix string) (*domain.BriefRecord, error)
	List(ctx context.Context) ([]*domain.BriefRecord, error)
	UpdateStatus(ctx context.Context, id string, status domain.BriefStatus) error
	Delete(ctx context.Context, id string) error
}
