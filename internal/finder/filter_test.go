package finder

import (
	"reflect"
	"testing"
)

func mustCompile(t *testing.T, pattern, include, exclude string) Constraints {
	t.Helper()
	c, err := Compile(Request{Pattern: pattern, Include: include, Exclude: exclude})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return c
}

func TestFilterPatternAndExclude(t *testing.T) {
	words := []string{"apple", "angle", "ankle", "ample"}

	got := Filter(words, mustCompile(t, "a...e", "", ""))
	if !reflect.DeepEqual(got, words) {
		t.Fatalf("expected all words, got %v", got)
	}

	got = Filter(words, mustCompile(t, "a...e", "", "n"))
	want := []string{"apple", "ample"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterIncludeAndExclude(t *testing.T) {
	words := []string{"apple", "grape", "plane"}
	got := Filter(words, mustCompile(t, "", "p", "g"))
	want := []string{"apple", "plane"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterEmptyConstraintsReturnsDictionary(t *testing.T) {
	words := []string{"crane", "slate", "crane2", "ab"}
	got := Filter(words, Constraints{})
	if !reflect.DeepEqual(got, words) {
		t.Fatalf("expected dictionary unchanged, got %v", got)
	}
}

func TestFilterEmptyDictionary(t *testing.T) {
	got := Filter(nil, mustCompile(t, "a....", "b", "c"))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestFilterIncludedAndExcludedLetterIsEmpty(t *testing.T) {
	words := []string{"apple", "grape", "plane"}
	got := Filter(words, mustCompile(t, "", "p", "p"))
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestFilterPatternLengthMismatch(t *testing.T) {
	words := []string{"apple", "apples", "appl"}
	got := Filter(words, mustCompile(t, "appl.", "", ""))
	if !reflect.DeepEqual(got, []string{"apple"}) {
		t.Fatalf("expected only five-letter match, got %v", got)
	}
	got = Filter(words, mustCompile(t, "a.", "", ""))
	if len(got) != 0 {
		t.Fatalf("expected no matches for short pattern, got %v", got)
	}
}

func TestFilterNormalizesCaseAndWhitespace(t *testing.T) {
	words := []string{"refer", "freed", "fever", "tiger"}
	got := Filter(words, mustCompile(t, " .E... ", "r E f", "D"))
	want := []string{"refer", "fever"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterProperties(t *testing.T) {
	words := []string{"crane", "slate", "trace", "crate", "react", "cater", "stare", "tears", "arise", "raise"}
	queries := []Request{
		{},
		{Pattern: "..a.."},
		{Include: "ae"},
		{Exclude: "st"},
		{Pattern: "c....", Include: "r", Exclude: "n"},
		{Pattern: "....e", Include: "t"},
		{Include: "z"},
	}
	for _, req := range queries {
		c, err := Compile(req)
		if err != nil {
			t.Fatalf("compile %+v: %v", req, err)
		}
		got := Filter(words, c)

		// Output is a subsequence of the input: no foreign words, no
		// repeats, same relative order.
		next := 0
		for _, w := range got {
			found := false
			for next < len(words) {
				next++
				if words[next-1] == w {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("%+v: %q is not an in-order member of the dictionary (%v)", req, w, got)
			}
		}

		for _, w := range got {
			if c.Exclude.ContainsAny(w) {
				t.Fatalf("%+v: %q contains an excluded letter", req, w)
			}
			if !c.Include.ContainedIn(w) {
				t.Fatalf("%+v: %q is missing a required letter", req, w)
			}
		}
	}
}
