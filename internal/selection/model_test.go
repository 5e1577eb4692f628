package selection

import (
	"testing"

	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(&catalog.Schema{
		ID:   "test",
		Name: "Test catalog",
		Assets: []catalog.AssetConfig{
			{ID: "a", Name: "Asset A", BasePrice: 8},
			{ID: "b", Name: "Asset B", BasePrice: 5, TemplateOverrides: map[string]int{"tmpl-b": 3}},
			{ID: "c", Name: "Asset C", BasePrice: 4},
			{ID: "w", Name: "Watermark", BasePrice: 2, Toggle: true},
		},
		Templates: []catalog.TemplateConfig{
			{ID: "tmpl-a", Name: "Template A", Preset: []string{"a", "b"}},
			{ID: "tmpl-b", Name: "Template B", Preset: []string{"b", "c"}},
			{ID: "tmpl-w", Name: "Template W", Preset: []string{"a", "w"}},
		},
	})
	require.NoError(t, err)
	return c
}

func newTestModel(t *testing.T) (*Model, *domain.BriefDraft) {
	t.Helper()
	draft := domain.NewBriefDraft()
	m := NewModel(testCatalog(t), pricing.Config{CustomPlaceholder: 5}, draft)
	return m, draft
}

func TestAdd_InsertThenIncrement(t *testing.T) {
	m, draft := newTestModel(t)

	m.Add("a")
	m.Add("a")
	m.Add("a")
	require.Len(t, draft.Items, 1)
	assert.Equal(t, 3, draft.Items[0].Quantity)
	assert.Equal(t, 8, draft.Items[0].UnitPrice)

	m.AdjustQuantity("a", -1)
	assert.Equal(t, 2, draft.Items[0].Quantity)
	assert.Equal(t, 16, m.Quote().TokenTotal)
}

func TestAdd_ToggleFlipsBetweenZeroAndOne(t *testing.T) {
	m, draft := newTestModel(t)

	m.Add("w")
	require.NotNil(t, draft.ItemByID("w"))
	assert.Equal(t, 1, draft.ItemByID("w").Quantity)
	assert.True(t, draft.WatermarkAllFiles)

	m.Add("w")
	assert.Nil(t, draft.ItemByID("w"), "second add unchecks the toggle")
	assert.False(t, draft.WatermarkAllFiles)
	assert.Equal(t, 0, m.Quote().TokenTotal)
}

func TestToggleInvariant_AnyAddSequence(t *testing.T) {
	m, draft := newTestModel(t)

	for i := 0; i < 7; i++ {
		m.Add("w")
		li := draft.ItemByID("w")
		if li != nil {
			assert.Equal(t, 1, li.Quantity)
		}
	}
	// Direct quantity bumps also never exceed 1.
	m.Add("w")
	m.AdjustQuantity("w", +5)
	if li := draft.ItemByID("w"); li != nil {
		assert.Equal(t, 1, li.Quantity)
	}
}

func TestAdd_UnknownAssetIsSkipped(t *testing.T) {
	m, draft := newTestModel(t)
	m.Add("ghost")
	assert.Empty(t, draft.Items)
}

func TestAdjustQuantity_RemovalAtZeroFiresHook(t *testing.T) {
	m, draft := newTestModel(t)

	var removed []string
	m.OnRemove(func(id string) { removed = append(removed, id) })

	m.Add("a")
	m.AdjustQuantity("a", -1)
	assert.Nil(t, draft.ItemByID("a"))
	assert.Equal(t, []string{"a"}, removed)
}

func TestAdjustQuantity_UnknownLineIsNoOp(t *testing.T) {
	m, draft := newTestModel(t)
	m.Add("a")
	m.AdjustQuantity("ghost", 1)
	assert.Equal(t, 1, draft.ItemByID("a").Quantity)
}

func TestCommitQuantityText(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantQty int // 0 = removed
	}{
		{"valid", "4", 4},
		{"padded", " 2 ", 2},
		{"blank removes", "", 0},
		{"zero removes", "0", 0},
		{"negative removes", "-3", 0},
		{"garbage removes", "four", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, draft := newTestModel(t)
			m.Add("a")
			m.CommitQuantityText("a", tc.raw)
			li := draft.ItemByID("a")
			if tc.wantQty == 0 {
				assert.Nil(t, li)
			} else {
				require.NotNil(t, li)
				assert.Equal(t, tc.wantQty, li.Quantity)
			}
		})
	}
}

func TestSetTemplate_ReplacesNeverMerges(t *testing.T) {
	m, draft := newTestModel(t)

	m.SetTemplate("tmpl-a")
	require.Len(t, draft.Items, 2)
	assert.Equal(t, 5, draft.ItemByID("b").UnitPrice, "base price under template A")

	m.SetTemplate("tmpl-b")
	assert.Nil(t, draft.ItemByID("a"), "no leftover from template A's preset")
	require.NotNil(t, draft.ItemByID("b"))
	require.NotNil(t, draft.ItemByID("c"))
	assert.Equal(t, 3, draft.ItemByID("b").UnitPrice, "template B override applies")
	assert.Equal(t, 4, draft.ItemByID("c").UnitPrice)
	assert.Equal(t, ModeTemplate, m.Mode())
	assert.Equal(t, "tmpl-b", draft.TemplateID)
}

func TestSetTemplate_CustomItemsSurvive(t *testing.T) {
	m, draft := newTestModel(t)

	custom, err := m.AddCustom("Hand-lettered poster", "A1, gold foil", 2)
	require.NoError(t, err)

	m.SetTemplate("tmpl-a")
	m.SetTemplate("tmpl-b")

	survived := draft.ItemByID(custom.ID)
	require.NotNil(t, survived)
	assert.Equal(t, "Hand-lettered poster", survived.Name)
	assert.Equal(t, 2, survived.Quantity)
	assert.Equal(t, 5, survived.UnitPrice, "placeholder price untouched")
}

func TestSetTemplate_PreservesAnnotationsForSurvivingIDs(t *testing.T) {
	m, draft := newTestModel(t)

	m.SetTemplate("tmpl-a")
	m.UpdateSpecification("b", "16:9 master plus cutdowns")
	m.UpdateDeliveryWeek("b", "W14")
	m.UpdateSpecification("a", "this text dies with the switch")

	m.SetTemplate("tmpl-b")

	b := draft.ItemByID("b")
	require.NotNil(t, b)
	assert.Equal(t, "16:9 master plus cutdowns", b.Specification)
	assert.Equal(t, "W14", b.DeliveryWeek)
}

func TestSetTemplate_SyncsWatermark(t *testing.T) {
	m, draft := newTestModel(t)

	m.SetTemplate("tmpl-w")
	assert.True(t, draft.WatermarkAllFiles)

	m.SetTemplate("tmpl-a")
	assert.False(t, draft.WatermarkAllFiles)
}

func TestSetBrowseAll_ClearsNonCustomOnly(t *testing.T) {
	m, draft := newTestModel(t)

	m.SetTemplate("tmpl-a")
	custom, err := m.AddCustom("Mural", "", 1)
	require.NoError(t, err)

	m.SetBrowseAll()
	require.Len(t, draft.Items, 1)
	assert.Equal(t, custom.ID, draft.Items[0].ID)
	assert.Equal(t, "", draft.TemplateID, "browse-all is no-template, not a sentinel")
	assert.Equal(t, ModeBrowseAll, m.Mode())
}

func TestAddCustom(t *testing.T) {
	m, draft := newTestModel(t)

	li, err := m.AddCustom("Billboard takeover", "Times Square, 3 weeks", 0)
	require.NoError(t, err)
	assert.True(t, li.IsCustom)
	assert.Equal(t, 1, li.Quantity, "quantity floors at 1")
	assert.Equal(t, 5, li.UnitPrice)
	assert.Equal(t, "Times Square, 3 weeks", li.Specification, "specification defaults to description")
	assert.NotEmpty(t, li.ID)
	assert.Empty(t, li.CatalogID)

	q := m.Quote()
	assert.Equal(t, 0, q.TokenTotal)
	assert.True(t, q.HasProvisional)
	require.Len(t, draft.Items, 1)
}

func TestAddCustom_BlankNameRejected(t *testing.T) {
	m, draft := newTestModel(t)
	_, err := m.AddCustom("   ", "desc", 1)
	assert.ErrorIs(t, err, ErrBlankCustomName)
	assert.Empty(t, draft.Items)
}

func TestClearAll(t *testing.T) {
	m, draft := newTestModel(t)

	var removed []string
	m.OnRemove(func(id string) { removed = append(removed, id) })

	m.Add("a")
	m.Add("w")
	_, err := m.AddCustom("Mural", "", 1)
	require.NoError(t, err)

	m.ClearAll()
	assert.Empty(t, draft.Items)
	assert.False(t, draft.WatermarkAllFiles)
	assert.Len(t, removed, 3)
}

func TestUnknownReferencesReachObserver(t *testing.T) {
	draft := domain.NewBriefDraft()
	obs := &recordingObserver{}
	m := NewModel(testCatalog(t), pricing.Config{}, draft, obs)

	m.Remove("ghost")
	m.UpdateSpecification("ghost", "x")
	m.UpdateDeliveryWeek("ghost", "x")
	m.CommitQuantityText("ghost", "2")
	m.SetTemplate("ghost")

	assert.Equal(t, []string{"remove", "update_specification", "update_delivery_week", "commit_quantity", "set_template"}, obs.ops)
}

type recordingObserver struct {
	ops []string
}

func (r *recordingObserver) OnUnknownReference(op, id string) {
	r.ops = append(r.ops, op)
}
