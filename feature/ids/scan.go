package ids

import (
	"regexp"
	"strings"

	"sptid/feature/items/models"
)

var candidatePattern = regexp.MustCompile(`(?i)[0-9a-f]{24}`)

// Resolver looks up IDs.
type Resolver interface {
	Lookup(id string) (models.ItemRecord, bool)
}

// Match is one ID candidate found in a text.
type Match struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Known bool   `json:"known"`
	Name  string `json:"name,omitempty"`
}

// Scan finds every 24 character hex run in text and marks the ones r knows.
// Offsets are byte offsets into text.
func Scan(text string, r Resolver) []Match {
	locs := candidatePattern.FindAllStringIndex(text, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		m := Match{ID: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]}
		if rec, ok := r.Lookup(m.ID); ok {
			m.Known = true
			m.Name = rec.Name
		}
		matches = append(matches, m)
	}
	return matches
}

// Known filters matches down to the resolved ones.
func Known(matches []Match) []Match {
	var out []Match
	for _, m := range matches {
		if m.Known {
			out = append(out, m)
		}
	}
	return out
}

// Resolve finds the record a piece of text refers to. The text is first
// tried as a whole after stripping quotes and whitespace, then every ID
// inside it is tried in order.
func Resolve(text string, r Resolver) (string, models.ItemRecord, bool) {
	clean := strings.Trim(text, "\"' \n\r\t")
	if rec, ok := r.Lookup(clean); ok {
		return clean, rec, true
	}
	for _, id := range candidatePattern.FindAllString(text, -1) {
		if rec, ok := r.Lookup(id); ok {
			return id, rec, true
		}
	}
	return "", models.ItemRecord{}, false
}
