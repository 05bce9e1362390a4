// core/dna/validate.go
package dna

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidBases is returned when a sequence holds characters outside A/C/G/T/N.
var ErrInvalidBases = errors.New("sequence must contain only valid DNA bases (A, T, C, G, N)")

// IsBase reports whether b is one of A, C, G, T, N (either case).
func IsBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'N', 'a', 'c', 'g', 't', 'n':
		return true
	}
	return false
}

// Normalize removes spaces/quotes and uppercases bases. It is meant for
// command-line arguments; ValidateBases does not strip anything.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// ValidateBases returns s uppercased, or an error wrapping ErrInvalidBases
// that names the first character outside A/C/G/T/N.
func ValidateBases(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("empty sequence: %w", ErrInvalidBases)
	}
	for i := 0; i < len(s); i++ {
		if !IsBase(s[i]) {
			r := []rune(s[i:])[0]
			return "", fmt.Errorf("invalid base %q at %d: %w", r, i+1, ErrInvalidBases)
		}
	}
	return strings.ToUpper(s), nil
}
