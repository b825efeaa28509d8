package finder

import (
	"strings"
	"unicode"
)

// LetterSet is a de-duplicated, ordered set of lowercase runes.
type LetterSet []rune

// ParseLetters strips whitespace from raw input, lowercases it and drops
// repeated runes. Every remaining rune is treated as a literal.
func ParseLetters(raw string) LetterSet {
	set := LetterSet{}
	for _, r := range strings.ToLower(raw) {
		if unicode.IsSpace(r) || set.has(r) {
			continue
		}
		set = append(set, r)
	}
	return set
}

// ContainsAny reports whether any rune of the set occurs in word.
func (s LetterSet) ContainsAny(word string) bool {
	for _, r := range s {
		if strings.ContainsRune(word, r) {
			return true
		}
	}
	return false
}

// ContainedIn reports whether every rune of the set occurs in word.
func (s LetterSet) ContainedIn(word string) bool {
	for _, r := range s {
		if !strings.ContainsRune(word, r) {
			return false
		}
	}
	return true
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	return s.has(r)
}

func (s LetterSet) has(r rune) bool {
	for _, existing := range s {
		if existing == r {
			return true
		}
	}
	return false
}

func (s LetterSet) String() string {
	return string(s)
}
