package models

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrUnknownField is returned when a field or preset name is not recognised.
var ErrUnknownField = errors.New("unknown scraping field")

type flagSet interface {
	~uint8
}

type namedFlag[T flagSet] struct {
	flag T
	name string
}

// formatFlags joins the names of the base flags set in v with "|".
// Bits without a name are appended in hex.
func formatFlags[T flagSet](v T, base []namedFlag[T], zero string) string {
	if v == 0 {
		return zero
	}
	var parts []string
	rest := v
	for _, nf := range base {
		if v&nf.flag == nf.flag {
			parts = append(parts, nf.name)
			rest &^= nf.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// parseFlags accepts base names and presets separated by "," or "|".
// Matching ignores case, and "-" or " " is read as "_".
func parseFlags[T flagSet](s string, names []namedFlag[T]) (T, error) {
	var v T
	tokens := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' })
	for _, tok := range tokens {
		key := normalizeName(tok)
		if key == "" {
			continue
		}
		found := false
		for _, nf := range names {
			if nf.name == key {
				v |= nf.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownField, strings.TrimSpace(tok))
		}
	}
	return v, nil
}

func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return strings.ToUpper(s)
}

func splitFlags[T flagSet](v T, base []namedFlag[T]) []T {
	out := make([]T, 0, bits.OnesCount8(uint8(v)))
	for _, nf := range base {
		if v&nf.flag != 0 {
			out = append(out, nf.flag)
		}
	}
	return out
}
