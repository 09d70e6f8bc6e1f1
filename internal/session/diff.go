package session

// Style tags a rendered glyph.
type Style int

const (
	StyleDefault Style = iota
	StyleError
	StyleSurplus
)

// Placeholder stands in for target runes that have not been typed yet.
const Placeholder = '_'

// Glyph is one rendered rune and its style.
type Glyph struct {
	Rune  rune
	Style Style
}

// Screen selects which view the program shows.
type Screen int

const (
	ScreenGame Screen = iota
	ScreenResults
)

// Frame is the content rendered for one cycle of the loop.
type Frame struct {
	Prompt string
	Line   []Glyph
}

// Diff compares target and input rune by rune. Mismatches show the target
// rune, over-typed runes show the typed rune, untyped positions show the
// placeholder. A trailing space separates the word from the next one.
func Diff(target string, input []rune) []Glyph {
	targetRunes := []rune(target)
	n := len(targetRunes)
	if len(input) > n {
		n = len(input)
	}
	out := make([]Glyph, 0, n+1)
	for i := 0; i < n; i++ {
		switch {
		case i < len(targetRunes) && i < len(input):
			if targetRunes[i] == input[i] {
				out = append(out, Glyph{Rune: targetRunes[i], Style: StyleDefault})
			} else {
				out = append(out, Glyph{Rune: targetRunes[i], Style: StyleError})
			}
		case i < len(input):
			out = append(out, Glyph{Rune: input[i], Style: StyleSurplus})
		default:
			out = append(out, Glyph{Rune: Placeholder, Style: StyleDefault})
		}
	}
	return append(out, Glyph{Rune: ' ', Style: StyleDefault})
}

// Line concatenates the diff of every entry in order.
func (s *Session) Line() []Glyph {
	var out []Glyph
	for i := range s.words {
		out = append(out, Diff(s.words[i].Target, s.words[i].Input)...)
	}
	return out
}

// Frame returns the prompt of the current word and the full diff line.
func (s *Session) Frame() Frame {
	frame := Frame{Line: s.Line()}
	if cur := s.Current(); cur != nil {
		frame.Prompt = cur.Prompt
	}
	return frame
}
