// Package session implements the typing exercise state: word entries, the
// input state machine and the character diff shown to the user.
package session

import "time"

// WordEntry is one target word together with the user's progress on it.
type WordEntry struct {
	Target  string
	Prompt  string
	Input   []rune
	Elapsed time.Duration

	timerStart time.Time
}

// NewWordEntry returns an idle entry for target with the given prompt.
func NewWordEntry(target, prompt string) WordEntry {
	return WordEntry{Target: target, Prompt: prompt}
}

// Active reports whether the entry's timer is running.
func (e *WordEntry) Active() bool {
	return !e.timerStart.IsZero()
}

// Matches reports whether the typed input equals the target exactly.
func (e *WordEntry) Matches() bool {
	return string(e.Input) == e.Target
}

func (e *WordEntry) startTimer(now time.Time) {
	e.timerStart = now
}

// stopTimer adds the time since the last start to Elapsed and clears the timer.
func (e *WordEntry) stopTimer(now time.Time) {
	if e.timerStart.IsZero() {
		return
	}
	if d := now.Sub(e.timerStart); d > 0 {
		e.Elapsed += d
	}
	e.timerStart = time.Time{}
}

func (e *WordEntry) pop() {
	if len(e.Input) == 0 {
		return
	}
	e.Input = e.Input[:len(e.Input)-1]
}
