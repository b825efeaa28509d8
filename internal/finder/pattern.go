// Package finder implements the word filter and its input parsing.
package finder

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// anySlot marks a wildcard position in a Pattern.
const anySlot rune = 0

// Pattern is a positional constraint: each slot is either a fixed lowercase
// rune or a wildcard. An empty Pattern places no constraint on a word.
type Pattern []rune

// PatternError reports a rune that cannot appear in a pattern.
type PatternError struct {
	Input  string
	Rune   rune
	Column int
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("unexpected %q at column %d in pattern %q (use letters and . for unknown positions)", e.Rune, e.Column, e.Input)
}

// Wildcard returns a pattern of n wildcard slots.
func Wildcard(n int) Pattern {
	if n <= 0 {
		return Pattern{}
	}
	return make(Pattern, n)
}

// ParsePattern validates raw user input and converts it to a Pattern.
// Letters fix a position; '.', '_', '?' and '*' leave it open. A leading '^'
// and trailing '$' are accepted and ignored.
func ParsePattern(raw string) (Pattern, error) {
	input := strings.ToLower(strings.TrimSpace(raw))
	body := strings.TrimPrefix(input, "^")
	offset := len(input) - len(body)
	body = strings.TrimSuffix(body, "$")

	p := make(Pattern, 0, utf8.RuneCountInString(body))
	column := utf8.RuneCountInString(input[:offset])
	for _, r := range body {
		column++
		switch {
		case r == '.' || r == '_' || r == '?' || r == '*':
			p = append(p, anySlot)
		case unicode.IsLetter(r):
			p = append(p, r)
		default:
			return nil, &PatternError{Input: raw, Rune: r, Column: column}
		}
	}
	return p, nil
}

// Len returns the number of positions in the pattern.
func (p Pattern) Len() int {
	return len(p)
}

// Fixed returns the rune required at position i, if any.
func (p Pattern) Fixed(i int) (rune, bool) {
	if i < 0 || i >= len(p) || p[i] == anySlot {
		return 0, false
	}
	return p[i], true
}

// Matches reports whether word satisfies every fixed slot. A non-empty pattern
// only matches words with the same number of runes.
func (p Pattern) Matches(word string) bool {
	if len(p) == 0 {
		return true
	}
	i := 0
	for _, r := range word {
		if i >= len(p) {
			return false
		}
		if p[i] != anySlot && p[i] != r {
			return false
		}
		i++
	}
	return i == len(p)
}

// String renders the pattern with '.' for wildcards.
func (p Pattern) String() string {
	var b strings.Builder
	for _, r := range p {
		if r == anySlot {
			b.WriteByte('.')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
