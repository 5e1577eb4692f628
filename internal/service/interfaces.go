package service

import (
	"context"

	"github.com/mkowalczyk/briefdesk/internal/domain"
)

// BriefService owns committed briefs: the list the builder hands finished
// drafts to, and the source drafts for duplication and change requests.
type BriefService interface {
	// Commit converts a complete draft into an immutable list entry.
	Commit(ctx context.Context, draft *domain.BriefDraft, status domain.BriefStatus) (*domain.BriefRecord, error)
	GetByID(ctx context.Context, idOrPrefix string) (*domain.BriefRecord, error)
	List(ctx context.Context) ([]*domain.BriefRecord, error)
	UpdateStatus(ctx context.Context, idOrPrefix string, status domain.BriefStatus) error
	Delete(ctx context.Context, idOrPrefix string) error

	// StartDuplicate rebuilds a working draft from a committed brief with
	// identity fields blanked.
	StartDuplicate(ctx context.Context, idOrPrefix string) (*domain.BriefDraft, error)
	// StartChangeRequest rebuilds the full draft for revision; the caller
	// freezes the original snapshot when the session starts.
	StartChangeRequest(ctx context.Context, idOrPrefix string) (*domain.BriefDraft, *domain.BriefRecord, error)
}
