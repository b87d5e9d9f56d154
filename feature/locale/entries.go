package locale

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrMalformed is returned when a locale document is not a JSON object.
var ErrMalformed = errors.New("locale file is not a JSON object")

// Entry is one key/value pair of a locale file.
type Entry struct {
	Key   string
	Value string
}

// ParseEntries returns the string entries of a locale document in the order
// they appear in the file. Entries with non-string values are skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrMalformed
	}

	var entries []Entry
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			entries = append(entries, Entry{Key: key.String(), Value: value.String()})
		}
		return true
	})
	return entries, nil
}
