package language

import (
	"errors"
	"fmt"
)

// Default is the language every lookup table falls back to.
const Default = "en"

// ErrUnsupported is returned when a language code is not in Supported.
var ErrUnsupported = errors.New("unsupported language")

// Language pairs a table code with its display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Supported lists the language codes the game ships locale files for.
var Supported = []Language{
	{"ch", "Simplified Chinese"},
	{"cz", "Czech"},
	{"en", "English"},
	{"es-mx", "Mexican Spanish"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"ge", "German"},
	{"hu", "Hungarian"},
	{"it", "Italian"},
	{"jp", "Japanese"},
	{"kr", "Korean"},
	{"pl", "Polish"},
	{"po", "Portuguese"},
	{"ro", "Romanian"},
	{"ru", "Russian"},
	{"sk", "Slovak"},
	{"tu", "Turkish"},
}

// IsSupported checks if code is one of the supported language codes.
func IsSupported(code string) bool {
	for _, l := range Supported {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Validate returns ErrUnsupported wrapped with the offending code.
func Validate(code string) error {
	if !IsSupported(code) {
		return fmt.Errorf("%w: %q", ErrUnsupported, code)
	}
	return nil
}

// Codes returns the supported codes in display order.
func Codes() []string {
	codes := make([]string, 0, len(Supported))
	for _, l := range Supported {
		codes = append(codes, l.Code)
	}
	return codes
}
