package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tokitype/internal/session"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func glyphStyle(style session.Style) lipgloss.Style {
	switch style {
	case session.StyleError:
		return errorStyle
	case session.StyleSurplus:
		return surplusStyle
	default:
		return defaultStyle
	}
}

// buildStyledRunes renders glyphs, underlining the one at cursorIndex.
// A negative cursorIndex draws no cursor.
func buildStyledRunes(glyphs []session.Glyph, cursorIndex int) []styledRune {
	out := make([]styledRune, 0, len(glyphs))
	for i, g := range glyphs {
		style := glyphStyle(g.Style)
		if i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(g.Rune)),
			width:   runewidth.RuneWidth(g.Rune),
			isSpace: g.Rune == ' ',
		})
	}
	return out
}

// cursorIndex returns the glyph position where the next typed rune lands, or
// -1 once the session is done.
func cursorIndex(s *session.Session) int {
	if s.Done() {
		return -1
	}
	offset := 0
	words := s.Words()
	for i := 0; i < s.Index(); i++ {
		offset += glyphCount(words[i])
	}
	return offset + len(words[s.Index()].Input)
}

func glyphCount(entry session.WordEntry) int {
	n := len([]rune(entry.Target))
	if len(entry.Input) > n {
		n = len(entry.Input)
	}
	return n + 1
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits in width. Runs
// without a space are hard-broken.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpace := -1

	flush := func(upTo, resumeFrom int) {
		out.WriteString(renderStyledRunes(line[:upTo]))
		out.WriteRune('\n')
		line = append(line[:0:0], line[resumeFrom:]...)
		lineWidth = 0
		lastSpace = -1
		for i, item := range line {
			lineWidth += item.width
			if item.isSpace {
				lastSpace = i
			}
		}
	}

	for _, item := range runes {
		for lineWidth+item.width > width && len(line) > 0 {
			if lastSpace >= 0 {
				flush(lastSpace, lastSpace+1)
			} else {
				flush(len(line), len(line))
			}
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpace = len(line) - 1
		}
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}
