package overrides

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"sptid/core/utils"
	"sptid/feature/items/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ErrMissingName is returned for a payload without a non-empty Name.
var ErrMissingName = errors.New("record has no Name")

// ParseFile extracts the lang payload of every ID in an override document.
// A document that is not a JSON object is an error; a bad entry only drops
// that ID.
func ParseFile(data []byte, lang string, logger *zap.Logger) (models.Table, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid override file: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	table := make(models.Table, len(entries))
	for _, id := range ids {
		var languages map[string]json.RawMessage
		if err := json.Unmarshal(entries[id], &languages); err != nil {
			logger.Warn("Failed to parse entry", zap.String("id", id), zap.Error(err))
			continue
		}

		payload, ok := languages[lang]
		if !ok {
			logger.Debug("No language data for entry", zap.String("id", id), zap.String("language", lang))
			continue
		}

		rec, err := ParseRecord(payload)
		if err != nil {
			logger.Warn("Failed to parse entry", zap.String("id", id), zap.String("language", lang), zap.Error(err))
			continue
		}
		table[id] = rec
	}
	return table, nil
}

// ParseRecord decodes one ItemRecord shaped payload. Every field except Name
// is optional and coerced leniently; values that cannot be coerced are left
// unset. A missing ShortName defaults to Name.
func ParseRecord(payload []byte) (models.ItemRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var f map[string]any
	if err := dec.Decode(&f); err != nil {
		return models.ItemRecord{}, err
	}
	if f == nil {
		return models.ItemRecord{}, ErrMissingName
	}

	name, ok := nameValue(f["Name"])
	if !ok {
		return models.ItemRecord{}, ErrMissingName
	}

	rec := models.ItemRecord{Name: name, ShortName: name}
	if short := utils.String(f["ShortName"]); short != nil && *short != "" {
		rec.ShortName = *short
	}
	if t := utils.String(f["Type"]); t != nil {
		rec.Type = models.ParseItemType(*t)
	}

	rec.DetailLink = utils.String(f["detailLink"])
	rec.Parent = utils.String(f["parent"])
	rec.ParentID = utils.String(f["parentID"])
	rec.ParentDetailLink = utils.String(f["parentDetailLink"])
	rec.FleaBlacklisted = utils.Bool(f["FleaBlacklisted"])
	rec.QuestItem = utils.Bool(f["QuestItem"])
	rec.Weight = utils.Float(f["Weight"])

	rec.Caliber = utils.String(f["Caliber"])
	rec.Damage = utils.Int(f["Damage"])
	rec.ArmorDamage = utils.Int(f["ArmorDamage"])
	rec.PenetrationPower = utils.Int(f["PenetrationPower"])

	rec.Currency = utils.String(f["currency"])
	rec.UnlockedByDefault = utils.Bool(f["unlockedByDefault"])

	rec.Description = utils.String(f["Description"])
	rec.BodyPart = utils.String(f["BodyPart"])
	rec.Sides = utils.String(f["Sides"])
	rec.IntegratedArmorVest = utils.Bool(f["IntegratedArmorVest"])
	rec.AvailableAsDefault = utils.Bool(f["AvailableAsDefault"])
	rec.PrefabPath = utils.String(f["prefabPath"])

	rec.MapID = utils.String(f["id"])
	rec.AirdropChance = utils.Float(f["airdropChance"])
	rec.EscapeTimeLimit = utils.Int(f["escapeTimeLimit"])
	rec.Insurance = utils.Bool(f["insurance"])
	rec.BossSpawns = utils.String(f["bossSpawns"])

	rec.Trader = utils.String(f["trader"])
	rec.TraderID = utils.String(f["traderId"])
	rec.TraderLink = utils.String(f["traderLink"])
	rec.QuestType = utils.String(f["questType"])

	return rec, nil
}

// nameValue reads Name as text. Scalars are taken in their literal JSON
// spelling, so `"Name": 5` names the item "5".
func nameValue(val any) (string, bool) {
	var name string
	switch v := val.(type) {
	case string:
		name = v
	case json.Number:
		name = v.String()
	case bool:
		name = strconv.FormatBool(v)
	}
	return name, name != ""
}
