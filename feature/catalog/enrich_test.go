package catalog

import (
	"testing"

	"sptid/feature/items/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loadIndex(t *testing.T, doc string) *Index {
	t.Helper()
	idx, err := Load([]byte(doc), zap.NewNop())
	require.NoError(t, err)
	return idx
}

func mustGet(t *testing.T, idx *Index, id string) *Entry {
	t.Helper()
	e, ok := idx.Get(id)
	require.True(t, ok, "missing %s", id)
	return e
}

func TestEnrich_CommonFields(t *testing.T) {
	idx := loadIndex(t, sampleCatalog)
	e := Enrich(mustGet(t, idx, "5c94bbff86f7747ee735c08f"), idx)

	require.NotNil(t, e.Type)
	assert.Equal(t, models.TypeItem, *e.Type)
	require.NotNil(t, e.Weight)
	assert.InDelta(t, 0.01, *e.Weight, 1e-9)
	require.NotNil(t, e.QuestItem)
	assert.False(t, *e.QuestItem)
	require.NotNil(t, e.FleaBlacklisted)
	assert.False(t, *e.FleaBlacklisted, "sellable items are not blacklisted")
	assert.Nil(t, e.Damage)
}

func TestEnrich_FleaBlacklistedNegatesRagfair(t *testing.T) {
	idx := loadIndex(t, `{
		"aaaaaaaaaaaaaaaaaaaaaaaa": {"_parent": "x", "_props": {"CanSellOnRagfair": false}},
		"bbbbbbbbbbbbbbbbbbbbbbbb": {"_parent": "x", "_props": {"CanSellOnRagfair": "maybe"}}
	}`)

	blocked := Enrich(mustGet(t, idx, "aaaaaaaaaaaaaaaaaaaaaaaa"), idx)
	require.NotNil(t, blocked.FleaBlacklisted)
	assert.True(t, *blocked.FleaBlacklisted)

	unknown := Enrich(mustGet(t, idx, "bbbbbbbbbbbbbbbbbbbbbbbb"), idx)
	assert.Nil(t, unknown.FleaBlacklisted)
}

func TestEnrich_Ammo(t *testing.T) {
	idx := loadIndex(t, sampleCatalog)
	e := Enrich(mustGet(t, idx, "5e023e53d4353e3302577c4c"), idx)

	require.NotNil(t, e.Type)
	assert.Equal(t, models.TypeAmmo, *e.Type)
	require.NotNil(t, e.Caliber)
	assert.Equal(t, "Caliber12g", *e.Caliber)
	require.NotNil(t, e.Damage)
	assert.Equal(t, 45, *e.Damage)
	require.NotNil(t, e.ArmorDamage)
	assert.Equal(t, 40, *e.ArmorDamage)
	require.NotNil(t, e.PenetrationPower)
	assert.Equal(t, 7, *e.PenetrationPower)
}

func TestEnrich_AmmoPackFollowsCartridge(t *testing.T) {
	idx := loadIndex(t, sampleCatalog)
	e := Enrich(mustGet(t, idx, "5737292724597765e5728562"), idx)

	require.NotNil(t, e.Type)
	assert.Equal(t, models.TypeAmmo, *e.Type)
	require.NotNil(t, e.Damage)
	assert.Equal(t, 45, *e.Damage)
	require.NotNil(t, e.Caliber)
	assert.Equal(t, "Caliber12g", *e.Caliber)
	require.NotNil(t, e.Weight)
	assert.InDelta(t, 0.4, *e.Weight, 1e-9, "box keeps its own weight")
}

func TestEnrich_AmmoPackBrokenChain(t *testing.T) {
	tests := []struct {
		name  string
		props string
	}{
		{"no stack slots", `{"Weight": 1}`},
		{"empty stack slots", `{"StackSlots": []}`},
		{"no filters", `{"StackSlots": [{"_props": {}}]}`},
		{"empty filter", `{"StackSlots": [{"_props": {"filters": [{"Filter": []}]}}]}`},
		{"unknown cartridge", `{"StackSlots": [{"_props": {"filters": [{"Filter": ["ffffffffffffffffffffffff"]}]}}]}`},
		{"non-string reference", `{"StackSlots": [{"_props": {"filters": [{"Filter": [42]}]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := loadIndex(t, `{"cccccccccccccccccccccccc": {"_parent": "543be5cb4bdc2deb348b4568", "_props": `+tt.props+`}}`)
			e := Enrich(mustGet(t, idx, "cccccccccccccccccccccccc"), idx)

			require.NotNil(t, e.Type)
			assert.Equal(t, models.TypeAmmo, *e.Type)
			assert.Nil(t, e.Caliber)
			assert.Nil(t, e.Damage)
			assert.Nil(t, e.ArmorDamage)
			assert.Nil(t, e.PenetrationPower)
		})
	}
}

func TestEnrich_Customization(t *testing.T) {
	idx := loadIndex(t, `{
		"5cde95d97d6c8b647a3769b0": {
			"_parent": "5cc084dd14c02e000b0550a3",
			"_props": {
				"Description": "Scav lower body",
				"BodyPart": "Feet",
				"Side": ["Savage"],
				"IntegratedArmorVest": "yes",
				"AvailableAsDefault": true
			}
		},
		"5cde96047d6c8b20b577f016": {
			"_parent": "5cc084dd14c02e000b0550a3",
			"_props": {"Side": "Bear", "BodyPart": "Body"}
		}
	}`)

	e := Enrich(mustGet(t, idx, "5cde95d97d6c8b647a3769b0"), idx)
	require.NotNil(t, e.Type)
	assert.Equal(t, models.TypeCustomization, *e.Type)
	require.NotNil(t, e.Description)
	assert.Equal(t, "Scav lower body", *e.Description)
	require.NotNil(t, e.BodyPart)
	assert.Equal(t, "Feet", *e.BodyPart)
	assert.Nil(t, e.Sides, "non-string Side is absent")
	require.NotNil(t, e.IntegratedArmorVest)
	assert.True(t, *e.IntegratedArmorVest)
	require.NotNil(t, e.AvailableAsDefault)
	assert.True(t, *e.AvailableAsDefault)

	bear := Enrich(mustGet(t, idx, "5cde96047d6c8b20b577f016"), idx)
	require.NotNil(t, bear.Sides)
	assert.Equal(t, "Bear", *bear.Sides)
}

func TestEnrich_NoProps(t *testing.T) {
	idx := loadIndex(t, sampleCatalog)
	e := Enrich(mustGet(t, idx, "57372ac324597767001bc261"), idx)
	assert.Equal(t, Enrichment{}, e)
}

func TestEnrich_NoParent(t *testing.T) {
	idx := loadIndex(t, `{"dddddddddddddddddddddddd": {"_props": {"Weight": "2.5", "Damage": 10}}}`)
	e := Enrich(mustGet(t, idx, "dddddddddddddddddddddddd"), idx)

	assert.Nil(t, e.Type)
	require.NotNil(t, e.Weight)
	assert.InDelta(t, 2.5, *e.Weight, 1e-9)
	assert.Nil(t, e.Damage, "ballistics need an ammo parent")
}

func TestEnrichment_ApplyTo(t *testing.T) {
	idx := loadIndex(t, sampleCatalog)
	rec := models.ItemRecord{Name: "12/70 flechette", ShortName: "flechette"}
	Enrich(mustGet(t, idx, "5737292724597765e5728562"), idx).ApplyTo(&rec)

	assert.Equal(t, "12/70 flechette", rec.Name)
	assert.Equal(t, "flechette", rec.ShortName)
	assert.Equal(t, "AMMO", rec.TypeName())
	require.NotNil(t, rec.Damage)
	assert.Equal(t, 45, *rec.Damage)
	assert.Nil(t, rec.QuestItem)

	Enrichment{}.ApplyTo(&rec)
	require.NotNil(t, rec.Damage, "absent fields never clear existing values")
}
