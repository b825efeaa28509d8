// Package stats computes letter statistics over candidate words.
package stats

import "sort"

// LetterCount records how often a letter appears among candidates.
type LetterCount struct {
	Letter      rune
	Words       int
	Occurrences int
}

// LetterCounts tallies, per rune, the number of words that contain it and
// its total number of occurrences. The result is ordered by rune.
func LetterCounts(words []string) []LetterCount {
	byLetter := map[rune]*LetterCount{}
	for _, word := range words {
		seen := map[rune]bool{}
		for _, r := range word {
			entry, ok := byLetter[r]
			if !ok {
				entry = &LetterCount{Letter: r}
				byLetter[r] = entry
			}
			entry.Occurrences++
			if !seen[r] {
				seen[r] = true
				entry.Words++
			}
		}
	}
	out := make([]LetterCount, 0, len(byLetter))
	for _, entry := range byLetter {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Letter < out[j].Letter
	})
	return out
}

// Share returns the fraction of total words containing the letter.
func (c LetterCount) Share(total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(c.Words) / float64(total)
}
