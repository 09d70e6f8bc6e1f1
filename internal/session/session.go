package session

import "time"

// KeyKind classifies a key event for the state machine.
type KeyKind int

const (
	// KeyIgnored is any event the exercise does not react to.
	KeyIgnored KeyKind = iota
	// KeyChar appends a printable rune to the current word.
	KeyChar
	// KeyBackspace deletes the last rune or returns to the previous word.
	KeyBackspace
	// KeyBoundary commits the current word.
	KeyBoundary
	// KeyAbort ends the session without committing anything.
	KeyAbort
)

// Key is a classified key event.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Outcome reports the session state after handling a key.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeComplete
	OutcomeAborted
)

// Pair is a target word and the prompt shown while it is typed.
type Pair struct {
	Word   string
	Prompt string
}

// Session owns the ordered word entries and the cursor into them.
type Session struct {
	words   []WordEntry
	index   int
	aborted bool
}

// New builds a session over pairs in the given order.
func New(pairs []Pair) *Session {
	words := make([]WordEntry, 0, len(pairs))
	for _, p := range pairs {
		words = append(words, NewWordEntry(p.Word, p.Prompt))
	}
	return &Session{words: words}
}

// Index returns the cursor. It equals Len once every word is committed.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of words in the session.
func (s *Session) Len() int {
	return len(s.words)
}

// Words returns the entries in presentation order.
func (s *Session) Words() []WordEntry {
	return s.words
}

// Complete reports whether the cursor has moved past the last word.
func (s *Session) Complete() bool {
	return s.index >= len(s.words)
}

// Aborted reports whether the session was ended by an abort key.
func (s *Session) Aborted() bool {
	return s.aborted
}

// Done reports whether the session accepts no further input.
func (s *Session) Done() bool {
	return s.aborted || s.Complete()
}

// Current returns the entry receiving input, or nil when the session is done.
func (s *Session) Current() *WordEntry {
	if s.Done() {
		return nil
	}
	return &s.words[s.index]
}

// Total returns the summed elapsed time of all entries.
func (s *Session) Total() time.Duration {
	var total time.Duration
	for i := range s.words {
		total += s.words[i].Elapsed
	}
	return total
}

// Handle applies one key event at instant now.
func (s *Session) Handle(key Key, now time.Time) Outcome {
	if s.aborted {
		return OutcomeAborted
	}
	if key.Kind == KeyAbort {
		s.aborted = true
		return OutcomeAborted
	}
	if s.Complete() {
		return OutcomeComplete
	}

	entry := &s.words[s.index]
	switch key.Kind {
	case KeyBoundary:
		entry.stopTimer(now)
		s.index++
	case KeyBackspace:
		s.backspace(entry, now)
	case KeyChar:
		if !entry.Active() {
			entry.startTimer(now)
		}
		entry.Input = append(entry.Input, key.Rune)
	}

	if s.Complete() {
		return OutcomeComplete
	}
	return OutcomeContinue
}

func (s *Session) backspace(entry *WordEntry, now time.Time) {
	if len(entry.Input) > 0 {
		entry.pop()
		return
	}
	// There is no word before the first one.
	if s.index == 0 {
		return
	}
	entry.stopTimer(now)
	s.index--
}
