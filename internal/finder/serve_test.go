package finder

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func decodeResponses(t *testing.T, out string) []Response {
	t.Helper()
	var responses []Response
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var resp Response
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestServeAnswersEachLine(t *testing.T) {
	f := New([]string{"apple", "grape", "plane"})
	in := strings.Join([]string{
		`{"pattern":"","include":"p","exclude":"g"}`,
		``,
		`not json`,
		`{"pattern":"pl[a]ne"}`,
		`{"pattern":"GR.PE"}`,
	}, "\n")

	var out bytes.Buffer
	if err := f.Serve(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("serve: %v", err)
	}
	responses := decodeResponses(t, out.String())
	if len(responses) != 4 {
		t.Fatalf("expected 4 responses, got %d: %s", len(responses), out.String())
	}
	if !reflect.DeepEqual(responses[0].Words, []string{"apple", "plane"}) || responses[0].Error != "" {
		t.Fatalf("unexpected first response: %+v", responses[0])
	}
	if !strings.HasPrefix(responses[1].Error, "malformed request") {
		t.Fatalf("expected malformed request error, got %+v", responses[1])
	}
	if responses[2].Error == "" {
		t.Fatalf("expected pattern error, got %+v", responses[2])
	}
	if !reflect.DeepEqual(responses[3].Words, []string{"grape"}) {
		t.Fatalf("unexpected last response: %+v", responses[3])
	}
}

func TestServeEmptyResultEncodesArray(t *testing.T) {
	f := New(nil)
	var out bytes.Buffer
	if err := f.Serve(context.Background(), strings.NewReader(`{"include":"z"}`), &out); err != nil {
		t.Fatalf("serve: %v", err)
	}
	if strings.TrimSpace(out.String()) != `{"words":[]}` {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestServeStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := New(nil).Serve(ctx, strings.NewReader(`{}`), &out)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %s", out.String())
	}
}

func TestServeAnswersOversizedLineAndContinues(t *testing.T) {
	f := New([]string{"apple", "grape", "plane"})
	big := `{"pattern":"` + strings.Repeat("a", 70*1024) + `"}`
	in := big + "\n" + `{"include":"g"}` + "\n"

	var out bytes.Buffer
	if err := f.Serve(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("serve: %v", err)
	}
	responses := decodeResponses(t, out.String())
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d: %s", len(responses), out.String())
	}
	if !strings.HasPrefix(responses[0].Error, "request too large") || len(responses[0].Words) != 0 {
		t.Fatalf("unexpected oversized response: %+v", responses[0])
	}
	if !reflect.DeepEqual(responses[1].Words, []string{"grape"}) || responses[1].Error != "" {
		t.Fatalf("unexpected follow-up response: %+v", responses[1])
	}
}

func TestServeRejectsNonObjectLines(t *testing.T) {
	f := New([]string{"apple", "grape"})
	in := strings.Join([]string{`null`, `[]`, `"apple"`, `{"pattern":"gr..."}`}, "\n")

	var out bytes.Buffer
	if err := f.Serve(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("serve: %v", err)
	}
	responses := decodeResponses(t, out.String())
	if len(responses) != 4 {
		t.Fatalf("expected 4 responses, got %d: %s", len(responses), out.String())
	}
	for i, resp := range responses[:3] {
		if !strings.HasPrefix(resp.Error, "malformed request") || len(resp.Words) != 0 {
			t.Fatalf("line %d: expected malformed request, got %+v", i+1, resp)
		}
	}
	if !reflect.DeepEqual(responses[3].Words, []string{"grape"}) {
		t.Fatalf("unexpected last response: %+v", responses[3])
	}
}
