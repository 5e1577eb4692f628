package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return &Schema{
		ID:      "studio",
		Name:    "Studio catalog",
		Version: "1",
		Assets: []AssetConfig{
			{ID: "video-30s", Name: "30s video", BasePrice: 8, TemplateOverrides: map[string]int{"social-refresh": 6}},
			{ID: "key-visual", Name: "Key visual", BasePrice: 5},
			{ID: "watermark", Name: "Watermark all files", BasePrice: 2, Toggle: true},
		},
		Templates: []TemplateConfig{
			{ID: "social-refresh", Name: "Social refresh", Preset: []string{"video-30s", "key-visual"}},
			{ID: "print-pack", Name: "Print pack", Preset: []string{"key-visual"}},
			{ID: "bare", Name: "Bare", Preset: []string{}},
		},
		WorkTypes: []string{"design", "motion", "copy"},
		Channels:  []string{"social", "web", "print"},
		Outputs:   []string{"stills", "video", "copy deck"},
		Leads: []LeadConfig{
			{ID: "lead-ana", Name: "Ana Duarte", Role: "Account lead"},
			{ID: "lead-rui", Name: "Rui Barros", Role: "Producer"},
		},
	}
}

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(testSchema())
	require.NoError(t, err)
	return c
}

func TestLookup(t *testing.T) {
	c := mustCatalog(t)

	a, ok := c.Lookup("video-30s")
	require.True(t, ok)
	assert.Equal(t, "30s video", a.Name)
	assert.Equal(t, 8, a.BasePrice)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)
}

func TestPriceFor_TemplateOverrideWins(t *testing.T) {
	c := mustCatalog(t)

	price, ok := c.PriceFor("video-30s", "social-refresh")
	require.True(t, ok)
	assert.Equal(t, 6, price)

	price, ok = c.PriceFor("video-30s", "print-pack")
	require.True(t, ok)
	assert.Equal(t, 8, price, "no override for this template, base price applies")

	price, ok = c.PriceFor("video-30s", "")
	require.True(t, ok)
	assert.Equal(t, 8, price)

	_, ok = c.PriceFor("nope", "social-refresh")
	assert.False(t, ok)
}

func TestPresetBundle(t *testing.T) {
	c := mustCatalog(t)

	assert.Equal(t, []string{"video-30s", "key-visual"}, c.PresetBundle("social-refresh"))
	assert.Empty(t, c.PresetBundle("bare"))
	assert.Empty(t, c.PresetBundle(BrowseAllID), "pseudo-template has no preset")
	assert.Empty(t, c.PresetBundle("unknown"))
}

func TestToggleAsset(t *testing.T) {
	c := mustCatalog(t)
	a, ok := c.ToggleAsset()
	require.True(t, ok)
	assert.Equal(t, "watermark", a.ID)
}

func TestOrderingIsStable(t *testing.T) {
	c := mustCatalog(t)

	var assetIDs []string
	for _, a := range c.Assets() {
		assetIDs = append(assetIDs, a.ID)
	}
	assert.Equal(t, []string{"video-30s", "key-visual", "watermark"}, assetIDs)

	var tmplIDs []string
	for _, tmpl := range c.Templates() {
		tmplIDs = append(tmplIDs, tmpl.ID)
	}
	assert.Equal(t, []string{"social-refresh", "print-pack", "bare"}, tmplIDs)
}

func TestLeadName(t *testing.T) {
	c := mustCatalog(t)
	assert.Equal(t, "Ana Duarte", c.LeadName("lead-ana"))
	assert.Equal(t, "ghost", c.LeadName("ghost"), "unknown ids fall back to the id")
}

func TestResolveTemplate(t *testing.T) {
	c := mustCatalog(t)

	tmpl, err := c.ResolveTemplate("Social Refresh")
	require.NoError(t, err)
	assert.Equal(t, "social-refresh", tmpl.ID)

	tmpl, err = c.ResolveTemplate("print-pack")
	require.NoError(t, err)
	assert.Equal(t, "Print pack", tmpl.Name)

	_, err = c.ResolveTemplate("")
	assert.Error(t, err)

	_, err = c.ResolveTemplate("missing")
	assert.Error(t, err)
}

func TestVocabulariesAreCopies(t *testing.T) {
	c := mustCatalog(t)
	got := c.WorkTypes()
	got[0] = "tampered"
	assert.Equal(t, "design", c.WorkTypes()[0])
}
