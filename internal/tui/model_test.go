package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tokitype/internal/session"
)

var epoch = time.Unix(1700000000, 0)

// newTestModel returns a model whose clock advances 100ms per key message.
func newTestModel(pairs ...session.Pair) *Model {
	m := NewModel(session.New(pairs))
	tick := 0
	m.now = func() time.Time {
		tick++
		return epoch.Add(time.Duration(tick) * 100 * time.Millisecond)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []session.Key
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []session.Key{{Kind: session.KeyAbort}}},
		{"ctrl+q", tea.KeyMsg{Type: tea.KeyCtrlQ}, []session.Key{{Kind: session.KeyAbort}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []session.Key{{Kind: session.KeyBackspace}}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []session.Key{{Kind: session.KeyBackspace}}},
		{"alt backspace", tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, nil},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []session.Key{{Kind: session.KeyBoundary}}},
		{"rune", runes("a"), []session.Key{{Kind: session.KeyChar, Rune: 'a'}}},
		{"paste", runes("a b"), []session.Key{
			{Kind: session.KeyChar, Rune: 'a'},
			{Kind: session.KeyBoundary},
			{Kind: session.KeyChar, Rune: 'b'},
		}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, nil},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, nil},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyKey(tt.msg, defaultKeys)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("key %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestClassifyKeyFollowsBindings(t *testing.T) {
	keys := defaultKeys
	keys.Commit = key.NewBinding(key.WithKeys("enter"))
	keys.Back = key.NewBinding(key.WithKeys("ctrl+h"))

	if got := classifyKey(tea.KeyMsg{Type: tea.KeyEnter}, keys); len(got) != 1 || got[0].Kind != session.KeyBoundary {
		t.Fatalf("expected enter to commit, got %v", got)
	}
	if got := classifyKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, keys); got != nil {
		t.Fatalf("expected unbound space to be ignored, got %v", got)
	}
	if got := classifyKey(tea.KeyMsg{Type: tea.KeyBackspace}, keys); got != nil {
		t.Fatalf("expected unbound backspace to be ignored, got %v", got)
	}

	keys.Back.SetEnabled(false)
	if got := classifyKey(tea.KeyMsg{Type: tea.KeyCtrlH}, keys); got != nil {
		t.Fatalf("expected disabled binding to be ignored, got %v", got)
	}
}

func TestUpdateTypesAndCommits(t *testing.T) {
	m := newTestModel(session.Pair{Word: "cat", Prompt: "soweli"}, session.Pair{Word: "dog"})
	cmd := send(t, m, runes("c"), runes("a"), runes("p"), tea.KeyMsg{Type: tea.KeySpace})
	if cmd != nil {
		t.Fatalf("expected no command mid-session")
	}
	s := m.Session()
	if s.Index() != 1 {
		t.Fatalf("expected cursor 1, got %d", s.Index())
	}
	if got := s.Words()[0].Elapsed; got != 300*time.Millisecond {
		t.Fatalf("expected 300ms elapsed, got %v", got)
	}
	if m.Screen() != session.ScreenGame {
		t.Fatalf("expected game screen")
	}
}

func TestUpdateCompletesSession(t *testing.T) {
	m := newTestModel(session.Pair{Word: "a"})
	cmd := send(t, m, runes("a"), tea.KeyMsg{Type: tea.KeySpace})
	if !isQuit(cmd) {
		t.Fatalf("expected quit on completion")
	}
	if m.Screen() != session.ScreenResults {
		t.Fatalf("expected results screen")
	}
	if m.Session().Aborted() {
		t.Fatalf("expected normal completion")
	}
	if cmd := send(t, m, runes("z")); cmd != nil {
		t.Fatalf("expected no further processing after completion")
	}
	if len(m.Session().Words()[0].Input) != 1 {
		t.Fatalf("expected input unchanged after completion")
	}
	if m.View() != "" {
		t.Fatalf("expected empty game view after completion")
	}
}

func TestUpdatePasteStopsAtCompletion(t *testing.T) {
	m := newTestModel(session.Pair{Word: "a"})
	cmd := send(t, m, runes("a bcd"))
	if !isQuit(cmd) {
		t.Fatalf("expected quit on completion")
	}
	if got := string(m.Session().Words()[0].Input); got != "a" {
		t.Fatalf("expected input a, got %q", got)
	}
}

func TestUpdateAbort(t *testing.T) {
	m := newTestModel(session.Pair{Word: "a"}, session.Pair{Word: "b"})
	cmd := send(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatalf("expected quit on abort")
	}
	s := m.Session()
	if !s.Aborted() || s.Index() != 0 {
		t.Fatalf("expected aborted session at word 0")
	}
	if s.Words()[0].Elapsed != 0 {
		t.Fatalf("expected no partial commit")
	}
	if m.Screen() != session.ScreenGame {
		t.Fatalf("expected abort to skip the results screen")
	}
}

func TestUpdateBackspaceAcrossWords(t *testing.T) {
	m := newTestModel(session.Pair{Word: "a"}, session.Pair{Word: "b"}, session.Pair{Word: "c"})
	send(t, m, runes("a"), tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyBackspace})
	s := m.Session()
	if s.Index() != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Index())
	}
	if s.Words()[1].Elapsed != 0 {
		t.Fatalf("expected word 1 elapsed unchanged")
	}
	if s.Words()[0].Elapsed != 100*time.Millisecond {
		t.Fatalf("expected word 0 elapsed 100ms, got %v", s.Words()[0].Elapsed)
	}
}

func TestInitQuitsOnEmptySession(t *testing.T) {
	m := newTestModel()
	if !isQuit(m.Init()) {
		t.Fatalf("expected empty session to quit immediately")
	}
	if m.Screen() != session.ScreenResults {
		t.Fatalf("expected results screen for empty session")
	}
	if m.View() != "" {
		t.Fatalf("expected empty view")
	}
}

func TestInitNonEmpty(t *testing.T) {
	m := newTestModel(session.Pair{Word: "a"})
	if m.Init() != nil {
		t.Fatalf("expected no initial command")
	}
}

func TestViewShowsPromptAndLine(t *testing.T) {
	m := newTestModel(session.Pair{Word: "toki", Prompt: "verb: to communicate"}, session.Pair{Word: "pona", Prompt: "good"})
	view := m.View()
	if !strings.Contains(view, "verb: to communicate") {
		t.Fatalf("expected prompt in view: %q", view)
	}
	if strings.Contains(view, "good") {
		t.Fatalf("expected only the current prompt in view")
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	view = m.View()
	if !strings.Contains(view, "Word 1/2") {
		t.Fatalf("expected progress in footer: %q", view)
	}
	if !strings.Contains(view, "quit") {
		t.Fatalf("expected key help in footer: %q", view)
	}
}

func TestRenderFooterProgress(t *testing.T) {
	m := newTestModel(session.Pair{Word: "a"}, session.Pair{Word: "b"})
	send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if out := m.renderFooter(); !strings.Contains(out, "Word 2/2") {
		t.Fatalf("unexpected footer: %q", out)
	}
}
