package stats

import (
	"sort"

	"github.com/verte-zerg/wordfind/internal/finder"
)

// TopLetters returns the n most widespread letters, skipping those in skip.
// A non-positive n returns all remaining letters.
func TopLetters(counts []LetterCount, n int, skip finder.LetterSet) []LetterCount {
	items := make([]LetterCount, 0, len(counts))
	for _, c := range counts {
		if skip.Has(c.Letter) {
			continue
		}
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Words != items[j].Words {
			return items[i].Words > items[j].Words
		}
		if items[i].Occurrences != items[j].Occurrences {
			return items[i].Occurrences > items[j].Occurrences
		}
		return items[i].Letter < items[j].Letter
	})
	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}
