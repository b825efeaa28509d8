package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordfind/internal/finder"
)

const columnGap = 2

type styledWord struct {
	s     string
	width int
}

// styleWord colors runes that satisfy a fixed slot or a required letter.
func styleWord(word string, c finder.Constraints) styledWord {
	var b strings.Builder
	width := 0
	for i, r := range []rune(word) {
		style := wordStyle
		if fixed, ok := c.Pattern.Fixed(i); ok && fixed == r {
			style = placedStyle
		} else if c.Include.Has(r) {
			style = presentStyle
		}
		b.WriteString(style.Render(string(r)))
		width += runewidth.RuneWidth(r)
	}
	return styledWord{s: b.String(), width: width}
}

func styleWords(words []string, c finder.Constraints) []styledWord {
	out := make([]styledWord, 0, len(words))
	for _, word := range words {
		out = append(out, styleWord(word, c))
	}
	return out
}

// columnCount returns how many cells fit in width.
func columnCount(words []styledWord, width int) int {
	cell := 0
	for _, w := range words {
		if w.width > cell {
			cell = w.width
		}
	}
	if cell == 0 || width <= cell {
		return 1
	}
	return (width + columnGap) / (cell + columnGap)
}

// layoutColumns lays words out left to right in equal-width columns.
func layoutColumns(words []styledWord, width int) string {
	if len(words) == 0 {
		return ""
	}
	cols := columnCount(words, width)
	cell := 0
	for _, w := range words {
		if w.width > cell {
			cell = w.width
		}
	}

	var out strings.Builder
	for i, w := range words {
		col := i % cols
		if col > 0 {
			out.WriteString(strings.Repeat(" ", columnGap))
		}
		out.WriteString(w.s)
		last := col == cols-1 || i == len(words)-1
		if last {
			if i < len(words)-1 {
				out.WriteRune('\n')
			}
			continue
		}
		out.WriteString(strings.Repeat(" ", cell-w.width))
	}
	return out.String()
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lineWidth := lipgloss.Width(line); lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
