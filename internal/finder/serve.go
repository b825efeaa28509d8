package finder

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const maxRequestSize = 64 * 1024

// Serve answers newline-delimited JSON requests read from r, writing one JSON
// response per line to w. Each request is answered before the next is read.
// A line that is not a valid request gets a response with Error set. Serve
// returns nil at EOF.
func (f *Finder) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	enc := json.NewEncoder(w)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, tooLong, err := readRequestLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read request: %w", err)
		}
		eof := err != nil

		line = bytes.TrimSpace(line)
		if len(line) > 0 || tooLong {
			resp := f.answer(line, tooLong)
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
		}
		if eof {
			return nil
		}
	}
}

func (f *Finder) answer(line []byte, tooLong bool) Response {
	if tooLong {
		return Response{Words: []string{}, Error: fmt.Sprintf("request too large: limit is %d bytes", maxRequestSize)}
	}
	// Only objects are requests; null would decode into a match-all Request.
	if line[0] != '{' {
		return Response{Words: []string{}, Error: "malformed request: expected a JSON object"}
	}
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Response{Words: []string{}, Error: fmt.Sprintf("malformed request: %v", err)}
	}
	return f.Handle(req)
}

// readRequestLine reads one line from br. A line longer than maxRequestSize is
// consumed in full and reported as tooLong with no content.
func readRequestLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxRequestSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return line, tooLong, err
	}
}
