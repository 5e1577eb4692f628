package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateSchema(testSchema()))
}

func TestValidateSchema_MissingBasics(t *testing.T) {
	schema := &Schema{}
	errs := ValidateSchema(schema)
	require.NotEmpty(t, errs)

	var messages []string
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	assert.Contains(t, messages, "catalog id is required")
	assert.Contains(t, messages, "catalog name is required")
	assert.Contains(t, messages, "at least one asset is required")
}

func TestValidateSchema_DuplicateAssetID(t *testing.T) {
	schema := testSchema()
	schema.Assets = append(schema.Assets, AssetConfig{ID: "video-30s", Name: "Dup", BasePrice: 1})
	errs := ValidateSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "duplicate id")
}

func TestValidateSchema_NegativePrice(t *testing.T) {
	schema := testSchema()
	schema.Assets[0].BasePrice = -1
	errs := ValidateSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "non-negative")
}

func TestValidateSchema_PresetReferencesUnknownAsset(t *testing.T) {
	schema := testSchema()
	schema.Templates[0].Preset = append(schema.Templates[0].Preset, "ghost")
	errs := ValidateSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "unknown asset")
}

func TestValidateSchema_OverrideReferencesUnknownTemplate(t *testing.T) {
	schema := testSchema()
	schema.Assets[1].TemplateOverrides = map[string]int{"ghost": 3}
	errs := ValidateSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "unknown template")
}

func TestValidateSchema_SecondToggleRejected(t *testing.T) {
	schema := testSchema()
	schema.Assets = append(schema.Assets, AssetConfig{ID: "rush", Name: "Rush delivery", BasePrice: 3, Toggle: true})
	errs := ValidateSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "at most one toggle asset")
}

func TestValidateSchema_ReservedTemplateID(t *testing.T) {
	schema := testSchema()
	schema.Templates = append(schema.Templates, TemplateConfig{ID: BrowseAllID, Name: "Everything"})
	errs := ValidateSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "reserved")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	valid := `{
		"id": "studio", "name": "Studio", "version": "1",
		"assets": [{"id": "key-visual", "name": "Key visual", "base_price": 5}],
		"templates": [{"id": "print-pack", "name": "Print pack", "preset": ["key-visual"]}]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "studio.json"), []byte(valid), 0o644))

	c, err := LoadDir(dir)
	require.NoError(t, err)

	_, ok := c.Lookup("key-visual")
	assert.True(t, ok)
}

func TestLoadDir_NoUsableSchema(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadDir(dir)
	assert.Error(t, err)
}
