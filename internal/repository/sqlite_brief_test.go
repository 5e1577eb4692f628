package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *SQLiteBriefRepo {
	t.Helper()
	return NewSQLiteBriefRepo(testutil.OpenTestDB(t))
}

func testRecord(id string) *domain.BriefRecord {
	due := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	draft := domain.NewBriefDraft()
	draft.Title = "Spring launch"
	draft.DueDate = &due
	draft.AddLead("lead-ana")
	draft.SetWorkTypes([]string{"design", "motion"})
	draft.TemplateID = "social-refresh"
	draft.Items = []*domain.LineItem{
		{ID: "video-30s", CatalogID: "video-30s", Name: "30s video", UnitPrice: 8, Quantity: 2, Specification: "16:9 master"},
		{ID: "custom-1", Name: "Event mural", UnitPrice: 5, Quantity: 1, IsCustom: true},
	}
	draft.WatermarkAllFiles = true
	draft.AttachFile("moodboard.pdf", 28412)

	return &domain.BriefRecord{
		ID:             id,
		Title:          draft.Title,
		Description:    "Q2 campaign refresh",
		TemplateBadge:  "Social refresh",
		DueDateLabel:   "2 Nov 2026",
		LineItemCount:  2,
		TokenTotal:     16,
		HasProvisional: true,
		Status:         domain.StatusDraft,
		Payload:        draft,
		CreatedAt:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSQLiteBriefRepo_CreateAndGet(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rec := testRecord("11111111-aaaa-bbbb-cccc-000000000001")
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, rec.TemplateBadge, got.TemplateBadge)
	assert.Equal(t, rec.TokenTotal, got.TokenTotal)
	assert.True(t, got.HasProvisional)
	assert.Equal(t, domain.StatusDraft, got.Status)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLiteBriefRepo_PayloadRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rec := testRecord("22222222-aaaa-bbbb-cccc-000000000002")
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Payload)

	assert.Equal(t, rec.Payload.Title, got.Payload.Title)
	require.NotNil(t, got.Payload.DueDate)
	assert.True(t, rec.Payload.DueDate.Equal(*got.Payload.DueDate))
	assert.Equal(t, rec.Payload.Leads, got.Payload.Leads)
	assert.Equal(t, rec.Payload.WorkTypes, got.Payload.WorkTypes)
	assert.Equal(t, rec.Payload.TemplateID, got.Payload.TemplateID)
	assert.True(t, got.Payload.WatermarkAllFiles)
	require.Len(t, got.Payload.Items, 2)
	assert.Equal(t, "16:9 master", got.Payload.Items[0].Specification)
	assert.True(t, got.Payload.Items[1].IsCustom)
	require.Len(t, got.Payload.Attachments, 1)
	assert.Equal(t, int64(28412), got.Payload.Attachments[0].Size)
}

func TestSQLiteBriefRepo_GetByID_NotFound(t *testing.T) {
	repo := testRepo(t)
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteBriefRepo_GetByPrefix(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testRecord("11111111-aaaa-bbbb-cccc-000000000001")))
	require.NoError(t, repo.Create(ctx, testRecord("11119999-aaaa-bbbb-cccc-000000000002")))

	got, err := repo.GetByPrefix(ctx, "11119999")
	require.NoError(t, err)
	assert.Equal(t, "11119999-aaaa-bbbb-cccc-000000000002", got.ID)

	_, err = repo.GetByPrefix(ctx, "1111")
	assert.ErrorIs(t, err, ErrAmbiguousPrefix)

	_, err = repo.GetByPrefix(ctx, "zz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByPrefix(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteBriefRepo_ListNewestFirst(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	older := testRecord("33333333-aaaa-bbbb-cccc-000000000003")
	older.CreatedAt = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	newer := testRecord("44444444-aaaa-bbbb-cccc-000000000004")
	newer.CreatedAt = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	briefs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, briefs, 2)
	assert.Equal(t, newer.ID, briefs[0].ID)
	assert.Equal(t, older.ID, briefs[1].ID)
}

func TestSQLiteBriefRepo_UpdateStatus(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rec := testRecord("55555555-aaaa-bbbb-cccc-000000000005")
	require.NoError(t, repo.Create(ctx, rec))

	require.NoError(t, repo.UpdateStatus(ctx, rec.ID, domain.StatusInReview))
	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInReview, got.Status)

	assert.Error(t, repo.UpdateStatus(ctx, rec.ID, domain.BriefStatus("shipped")))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", domain.StatusScoped), ErrNotFound)
}

func TestSQLiteBriefRepo_Delete(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rec := testRecord("66666666-aaaa-bbbb-cccc-000000000006")
	require.NoError(t, repo.Create(ctx, rec))

	require.NoError(t, repo.Delete(ctx, rec.ID))
	_, err := repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
}
