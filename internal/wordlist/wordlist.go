// Package wordlist loads the candidate dictionary.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"
)

//go:embed words.txt
var embeddedWords string

var (
	defaultOnce sync.Once
	defaultDict Dictionary
)

// Dictionary is an ordered list of lowercase candidate words. It is never
// modified after loading.
type Dictionary []string

// Default returns the embedded five-letter word list.
func Default() Dictionary {
	defaultOnce.Do(func() {
		dict, err := Parse(strings.NewReader(embeddedWords), nil)
		if err != nil {
			panic(fmt.Sprintf("embedded word list: %v", err))
		}
		defaultDict = dict
	})
	return defaultDict
}

// LoadWords reads one word per line from the provided file path. Words
// rejected by keep are skipped; a nil keep accepts everything.
func LoadWords(path string, keep FilterFunc) (Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := Parse(file, keep)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Parse reads newline-delimited words. Lines are trimmed and lowercased,
// blank lines are skipped and repeated words keep their first position.
func Parse(r io.Reader, keep FilterFunc) (Dictionary, error) {
	var words Dictionary
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		if keep != nil && !keep(line) {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// WordLen returns the rune length shared by every word, or 0 when the
// dictionary is empty or lengths differ.
func (d Dictionary) WordLen() int {
	if len(d) == 0 {
		return 0
	}
	n := utf8.RuneCountInString(d[0])
	for _, word := range d[1:] {
		if utf8.RuneCountInString(word) != n {
			return 0
		}
	}
	return n
}
