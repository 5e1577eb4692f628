package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
	"github.com/mkowalczyk/briefdesk/internal/repository"
)

const dueDateLabelLayout = "2 Jan 2006"

type briefService struct {
	repo     repository.BriefRepo
	cat      *catalog.Catalog
	observer UseCaseObserver
}

// NewBriefService wires the brief list over its repository. The catalog is
// only read for display names (template badges).
func NewBriefService(repo repository.BriefRepo, cat *catalog.Catalog, observers ...UseCaseObserver) BriefService {
	return &briefService{
		repo:     repo,
		cat:      cat,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *briefService) Commit(ctx context.Context, draft *domain.BriefDraft, status domain.BriefStatus) (rec *domain.BriefRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"status": string(status)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "commit-brief",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if incomplete := domain.NewIncompleteError(draft); incomplete != nil {
		return nil, incomplete
	}
	if status != domain.StatusDraft && status != domain.StatusInReview {
		return nil, fmt.Errorf("brief cannot be committed as %q", status)
	}

	quote := pricing.Compute(draft.Items)
	rec = &domain.BriefRecord{
		ID:             uuid.New().String(),
		Title:          draft.Title,
		Description:    draft.Summary,
		TemplateBadge:  s.templateBadge(draft.TemplateID),
		DueDateLabel:   dueDateLabel(draft.DueDate),
		LineItemCount:  len(draft.Items),
		TokenTotal:     quote.TokenTotal,
		HasProvisional: quote.HasProvisional,
		Status:         status,
		Payload:        draft.Clone(),
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	fields["brief_id"] = rec.ID
	fields["line_items"] = rec.LineItemCount
	fields["token_total"] = rec.TokenTotal

	if err = s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("committing brief: %w", err)
	}
	return rec, nil
}

func (s *briefService) GetByID(ctx context.Context, idOrPrefix string) (*domain.BriefRecord, error) {
	return s.resolve(ctx, idOrPrefix)
}

func (s *briefService) List(ctx context.Context) ([]*domain.BriefRecord, error) {
	return s.repo.List(ctx)
}

func (s *briefService) UpdateStatus(ctx context.Context, idOrPrefix string, status domain.BriefStatus) error {
	rec, err := s.resolve(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, rec.ID, status)
}

func (s *briefService) Delete(ctx context.Context, idOrPrefix string) error {
	rec, err := s.resolve(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, rec.ID)
}

func (s *briefService) StartDuplicate(ctx context.Context, idOrPrefix string) (*domain.BriefDraft, error) {
	rec, err := s.resolve(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	return DuplicateOf(rec), nil
}

func (s *briefService) StartChangeRequest(ctx context.Context, idOrPrefix string) (*domain.BriefDraft, *domain.BriefRecord, error) {
	rec, err := s.resolve(ctx, idOrPrefix)
	if err != nil {
		return nil, nil, err
	}
	return RevisionOf(rec), rec, nil
}

func (s *briefService) resolve(ctx context.Context, idOrPrefix string) (*domain.BriefRecord, error) {
	rec, err := s.repo.GetByID(ctx, idOrPrefix)
	if err == nil {
		return rec, nil
	}
	rec, prefixErr := s.repo.GetByPrefix(ctx, idOrPrefix)
	if prefixErr != nil {
		return nil, fmt.Errorf("resolving brief '%s': %w", idOrPrefix, prefixErr)
	}
	return rec, nil
}

func (s *briefService) templateBadge(templateID string) string {
	if templateID == "" || s.cat == nil {
		return ""
	}
	tmpl, ok := s.cat.TemplateByID(templateID)
	if !ok {
		return templateID
	}
	return tmpl.Name
}

func dueDateLabel(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format(dueDateLabelLayout)
}
