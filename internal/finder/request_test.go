package finder

import (
	"errors"
	"reflect"
	"testing"
)

func TestFinderHandle(t *testing.T) {
	f := New([]string{"apple", "grape", "plane"})

	resp := f.Handle(Request{Include: "P", Exclude: "g"})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if !reflect.DeepEqual(resp.Words, []string{"apple", "plane"}) {
		t.Fatalf("unexpected words: %v", resp.Words)
	}

	resp = f.Handle(Request{Pattern: "pl[a]ne"})
	if resp.Error == "" {
		t.Fatalf("expected error for bracket pattern")
	}
	if resp.Words == nil || len(resp.Words) != 0 {
		t.Fatalf("expected empty word list on error, got %#v", resp.Words)
	}
}

func TestFinderFindWrapsPatternError(t *testing.T) {
	f := New(nil)
	_, err := f.Find(Request{Pattern: "a+"})
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PatternError, got %v", err)
	}
}
