package stats

import "github.com/verte-zerg/wordfind/internal/finder"

// Report summarizes the candidates left by a query.
type Report struct {
	Candidates int
	Letters    []LetterCount
}

// BuildReport counts letters across words and keeps the top n, leaving out
// letters the player already knows are present.
func BuildReport(words []string, known finder.LetterSet, n int) Report {
	return Report{
		Candidates: len(words),
		Letters:    TopLetters(LetterCounts(words), n, known),
	}
}
