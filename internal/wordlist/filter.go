package wordlist

import (
	"strings"
	"unicode/utf8"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return func(string) bool { return true }
	}
}

// FilterForLength keeps words of exactly n runes. n <= 0 keeps everything.
func FilterForLength(n int) FilterFunc {
	if n <= 0 {
		return func(string) bool { return true }
	}
	return func(word string) bool {
		return utf8.RuneCountInString(word) == n
	}
}

// Strict keeps plain a-z words with the same length as the built-in list.
func Strict() FilterFunc {
	return All(FilterForLang("en"), FilterForLength(Default().WordLen()))
}

// All keeps a word only when every non-nil filter keeps it.
func All(filters ...FilterFunc) FilterFunc {
	return func(word string) bool {
		for _, keep := range filters {
			if keep != nil && !keep(word) {
				return false
			}
		}
		return true
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
