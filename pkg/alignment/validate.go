package alignment

import (
	"fmt"
	"strings"
	"unicode"
)

// Sequence is an ordered run of alphabet symbols. Anything built by
// Normalize is guaranteed to contain only alphabet members.
type Sequence string

// InvalidSymbolError reports the first character outside the alphabet.
type InvalidSymbolError struct {
	Symbol   rune
	Position int // 0-based index into the normalized input
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d; allowed: the 20 amino-acid codes and %q", e.Symbol, e.Position+1, Gap)
}

// Normalize uppercases raw and verifies every character against the
// alphabet. It is the authoritative gate at submission time; live filtering
// makes failure rare but programmatic input still lands here. Empty input is
// valid and yields an empty Sequence — required-field enforcement belongs to
// the form.
func Normalize(raw string) (Sequence, error) {
	s := strings.ToUpper(raw)
	for i := 0; i < len(s); i++ {
		if !Valid(s[i]) {
			return "", &InvalidSymbolError{Symbol: rune(s[i]), Position: i}
		}
	}
	return Sequence(s), nil
}

// FilterLive uppercases raw and silently drops characters outside the
// alphabet. Applied to the input buffer on every keystroke so the field can
// never hold an invalid character.
func FilterLive(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		r = unicode.ToUpper(r)
		if r < 256 && Valid(byte(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
