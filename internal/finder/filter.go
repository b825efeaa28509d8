package finder

// Constraints holds the three predicates a word must satisfy.
type Constraints struct {
	Pattern Pattern
	Include LetterSet
	Exclude LetterSet
}

// Match reports whether word satisfies all constraints.
func (c Constraints) Match(word string) bool {
	if c.Exclude.ContainsAny(word) {
		return false
	}
	if !c.Include.ContainedIn(word) {
		return false
	}
	return c.Pattern.Matches(word)
}

// Filter returns the words that satisfy c, in their original order.
func Filter(words []string, c Constraints) []string {
	matches := make([]string, 0)
	for _, word := range words {
		if c.Match(word) {
			matches = append(matches, word)
		}
	}
	return matches
}
