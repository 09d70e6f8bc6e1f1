package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tokitype/internal/session"
)

type keyMap struct {
	Commit key.Binding
	Back   key.Binding
	Abort  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Back, k.Abort}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Commit: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "next word")),
	Back:   key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "delete / previous word")),
	Abort:  key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+c", "quit")),
}

// classifyKey maps a terminal key message to state machine keys. Runes
// messages can carry several characters when text is pasted.
func classifyKey(msg tea.KeyMsg, keys keyMap) []session.Key {
	switch {
	case key.Matches(msg, keys.Abort):
		return []session.Key{{Kind: session.KeyAbort}}
	case key.Matches(msg, keys.Back):
		return []session.Key{{Kind: session.KeyBackspace}}
	case key.Matches(msg, keys.Commit):
		return []session.Key{{Kind: session.KeyBoundary}}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	out := make([]session.Key, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if r == ' ' {
			out = append(out, session.Key{Kind: session.KeyBoundary})
			continue
		}
		out = append(out, session.Key{Kind: session.KeyChar, Rune: r})
	}
	return out
}
