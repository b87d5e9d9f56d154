package overrides

import (
	"testing"

	"sptid/feature/items/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const overrideDoc = `{
	"66a0e2a4c1d2e3f4a5b6c7d8": {
		"en": {
			"Name": "Custom Rifle",
			"ShortName": "CR",
			"Type": "weapon",
			"Weight": "3.5",
			"FleaBlacklisted": "Yes",
			"QuestItem": "Unknown",
			"Damage": "not_a_number"
		},
		"fr": {"Name": "Fusil personnalisé"}
	},
	"66a0e2a4c1d2e3f4a5b6c7d9": {"en": {"ShortName": "no name"}},
	"66a0e2a4c1d2e3f4a5b6c7da": {"en": "not an object"},
	"66a0e2a4c1d2e3f4a5b6c7db": {"fr": {"Name": "Seulement français"}},
	"66a0e2a4c1d2e3f4a5b6c7dc": [1, 2, 3],
	"66a0e2a4c1d2e3f4a5b6c7dd": {"en": {"Name": "Mystery Box", "Type": "gizmo", "Damage": 12}}
}`

func TestParseFile(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	table, err := ParseFile([]byte(overrideDoc), "en", zap.New(core))
	require.NoError(t, err)

	require.Len(t, table, 2)

	rifle := table["66a0e2a4c1d2e3f4a5b6c7d8"]
	assert.Equal(t, "Custom Rifle", rifle.Name)
	assert.Equal(t, "CR", rifle.ShortName)
	assert.Equal(t, "WEAPON", rifle.TypeName())
	require.NotNil(t, rifle.Weight)
	assert.InDelta(t, 3.5, *rifle.Weight, 1e-9)
	require.NotNil(t, rifle.FleaBlacklisted)
	assert.True(t, *rifle.FleaBlacklisted)
	assert.Nil(t, rifle.QuestItem)
	assert.Nil(t, rifle.Damage)

	box := table["66a0e2a4c1d2e3f4a5b6c7dd"]
	assert.Equal(t, "Mystery Box", box.ShortName, "short name defaults to name")
	assert.Equal(t, models.TypeItem, *box.Type, "unknown types fold to ITEM")
	require.NotNil(t, box.Damage)
	assert.Equal(t, 12, *box.Damage)

	assert.Equal(t, 3, logs.FilterMessage("Failed to parse entry").Len())
}

func TestParseFile_OtherLanguage(t *testing.T) {
	table, err := ParseFile([]byte(overrideDoc), "fr", zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, table, 2)
	assert.Equal(t, "Fusil personnalisé", table["66a0e2a4c1d2e3f4a5b6c7d8"].Name)
	assert.Equal(t, "Seulement français", table["66a0e2a4c1d2e3f4a5b6c7db"].Name)
}

func TestParseFile_Malformed(t *testing.T) {
	for _, doc := range []string{`{`, `[]`, `"x"`} {
		_, err := ParseFile([]byte(doc), "en", zap.NewNop())
		assert.Error(t, err, doc)
	}
}

func TestParseRecord(t *testing.T) {
	t.Run("Requires name", func(t *testing.T) {
		for _, payload := range []string{`{}`, `{"Name": ""}`, `{"Name": null}`, `{"Name": {}}`, `null`} {
			_, err := ParseRecord([]byte(payload))
			assert.ErrorIs(t, err, ErrMissingName, payload)
		}
	})

	t.Run("Any non-empty name", func(t *testing.T) {
		tests := []struct {
			payload string
			want    string
		}{
			{`{"Name": "  "}`, "  "},
			{`{"Name": 5}`, "5"},
			{`{"Name": 1.50}`, "1.50"},
			{`{"Name": true}`, "true"},
		}
		for _, tt := range tests {
			rec, err := ParseRecord([]byte(tt.payload))
			require.NoError(t, err, tt.payload)
			assert.Equal(t, tt.want, rec.Name)
			assert.Equal(t, tt.want, rec.ShortName)
		}
	})

	t.Run("Location and quest fields", func(t *testing.T) {
		rec, err := ParseRecord([]byte(`{
			"Name": "Customs", "Type": "LOCATION", "id": "bigmap",
			"airdropChance": 20, "escapeTimeLimit": "40", "insurance": "true",
			"trader": "Prapor", "traderId": "54cb50c76803fa8b248b4571", "questType": "Elimination",
			"unlockedByDefault": "no", "currency": "RUB", "Sides": "Usec", "prefabPath": "assets/x.bundle"
		}`))
		require.NoError(t, err)

		assert.Equal(t, models.TypeLocation, *rec.Type)
		assert.Equal(t, "bigmap", *rec.MapID)
		assert.InDelta(t, 20.0, *rec.AirdropChance, 1e-9)
		assert.Equal(t, 40, *rec.EscapeTimeLimit)
		assert.True(t, *rec.Insurance)
		assert.Equal(t, "Prapor", *rec.Trader)
		assert.Equal(t, "54cb50c76803fa8b248b4571", *rec.TraderID)
		assert.Equal(t, "Elimination", *rec.QuestType)
		assert.False(t, *rec.UnlockedByDefault)
		assert.Equal(t, "RUB", *rec.Currency)
		assert.Equal(t, "Usec", *rec.Sides)
		assert.Equal(t, "assets/x.bundle", *rec.PrefabPath)
	})
}
