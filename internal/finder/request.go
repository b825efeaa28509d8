package finder

import "fmt"

// Request is a raw query as typed by the user.
type Request struct {
	Pattern string `json:"pattern"`
	Include string `json:"include"`
	Exclude string `json:"exclude"`
}

// Response carries the matches for a Request, or the reason it was rejected.
type Response struct {
	Words []string `json:"words"`
	Error string   `json:"error,omitempty"`
}

// Compile validates a request and builds its constraints.
func Compile(req Request) (Constraints, error) {
	pattern, err := ParsePattern(req.Pattern)
	if err != nil {
		return Constraints{}, err
	}
	return Constraints{
		Pattern: pattern,
		Include: ParseLetters(req.Include),
		Exclude: ParseLetters(req.Exclude),
	}, nil
}

// Finder answers requests against a fixed word list.
type Finder struct {
	words []string
}

// New returns a Finder over words. The slice must not be modified afterwards.
func New(words []string) *Finder {
	return &Finder{words: words}
}

// Words returns the underlying word list.
func (f *Finder) Words() []string {
	return f.words
}

// Find compiles req and returns the matching words.
func (f *Finder) Find(req Request) ([]string, error) {
	c, err := Compile(req)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return Filter(f.words, c), nil
}

// Handle is Find with the error folded into the response.
func (f *Finder) Handle(req Request) Response {
	words, err := f.Find(req)
	if err != nil {
		return Response{Words: []string{}, Error: err.Error()}
	}
	return Response{Words: words}
}
