// Package generator builds randomized word sequences for a session.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tokitype/internal/model"
	"github.com/verte-zerg/tokitype/internal/session"
)

// MaxWords caps the number of words in one session.
const MaxWords = 40

// Generator produces randomized word orderings.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate shuffles records and keeps at most count of them, capped at
// MaxWords. The input slice is not modified.
func (g *Generator) Generate(records []model.WordRecord, count int) []session.Pair {
	if count <= 0 || count > MaxWords {
		count = MaxWords
	}
	shuffled := make([]model.WordRecord, len(records))
	copy(shuffled, records)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}

	pairs := make([]session.Pair, 0, len(shuffled))
	for _, r := range shuffled {
		pairs = append(pairs, session.Pair{Word: r.Word, Prompt: r.Hint()})
	}
	return pairs
}
