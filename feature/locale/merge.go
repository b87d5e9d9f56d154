package locale

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"sptid/feature/catalog"
	"sptid/feature/items/models"
)

// Property names that carry display text.
const (
	PropertyName      = "Name"
	PropertyShortName = "ShortName"
	PropertyNickname  = "Nickname"
)

// SplitKey splits a locale key of the form "<id> <property>". Keys that do
// not have exactly two space separated parts, or whose id is not IDLength
// characters long, address something other than an item and are rejected.
func SplitKey(key string) (id, property string, ok bool) {
	parts := strings.Split(key, " ")
	if len(parts) != 2 {
		return "", "", false
	}
	if len(parts[0]) != models.IDLength {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// NormalizeProperty upper-cases the first character so that "name" and
// "Name" address the same field.
func NormalizeProperty(property string) string {
	r, size := utf8.DecodeRuneInString(property)
	if r == utf8.RuneError {
		return property
	}
	return string(unicode.ToUpper(r)) + property[size:]
}

// Merge folds locale entries into one record per item ID, attaches the
// catalog enrichment of every ID present in idx and drops records that end up
// without a display name. Entries are folded in slice order.
func Merge(entries []Entry, idx *catalog.Index) models.Table {
	acc := make(map[string]*models.ItemRecord)
	for _, e := range entries {
		id, property, ok := SplitKey(e.Key)
		if !ok {
			continue
		}
		rec, ok := acc[id]
		if !ok {
			rec = &models.ItemRecord{}
			acc[id] = rec
		}
		applyText(rec, NormalizeProperty(property), e.Value)
	}

	out := make(models.Table, len(acc))
	for id, rec := range acc {
		if entry, ok := idx.Get(id); ok {
			catalog.Enrich(entry, idx).ApplyTo(rec)
		}
		if !rec.HasDisplayName() {
			continue
		}
		out[id] = *rec
	}
	return out
}

// applyText applies one display text value. Nickname sets both names; Name
// and ShortName set their own field and backfill the other while it is empty.
func applyText(rec *models.ItemRecord, property, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	switch property {
	case PropertyNickname:
		rec.Name = value
		rec.ShortName = value
	case PropertyName, PropertyShortName:
		if property == PropertyName {
			rec.Name = value
		} else {
			rec.ShortName = value
		}
		if rec.Name == "" {
			rec.Name = value
		}
		if rec.ShortName == "" {
			rec.ShortName = value
		}
	}
}
