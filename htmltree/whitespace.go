package htmltree

import (
	"fmt"
	"strings"
	"unicode"
)

// WhitespaceMode selects how whitespace-only text nodes are lowered.
type WhitespaceMode string

// Whitespace modes.
const (
	WhitespacePreserve WhitespaceMode = "preserve"
	WhitespaceRemove   WhitespaceMode = "remove"
)

// ParseWhitespaceMode validates a mode name. The empty string selects preserve.
func ParseWhitespaceMode(s string) (WhitespaceMode, error) {
	switch WhitespaceMode(strings.ToLower(s)) {
	case "", WhitespacePreserve:
		return WhitespacePreserve, nil
	case WhitespaceRemove:
		return WhitespaceRemove, nil
	}
	return "", fmt.Errorf("%w: %q (must be preserve or remove)", ErrInvalidWhitespaceMode, s)
}

// IsWhitespace reports whether s is empty or consists only of Unicode white space.
func IsWhitespace(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// keepText applies the whitespace policy to one text value.
func (o Options) keepText(value string) bool {
	return o.Whitespace != WhitespaceRemove || !IsWhitespace(value)
}
