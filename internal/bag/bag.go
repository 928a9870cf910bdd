// Package bag implements the 7-bag randomizer: every kind is dealt once per
// bag, in shuffled order, before the bag is refilled.
package bag

import (
	"math/rand"

	"github.com/hersh/blockfall/internal/piece"
)

// Bag deals piece kinds. When created from the same seed, two bags produce
// identical sequences.
type Bag struct {
	rng   *rand.Rand
	kinds []piece.Kind
}

// New creates a bag drawing randomness from src. The bag starts empty and
// fills itself on the first draw.
func New(src rand.Source) *Bag {
	return &Bag{rng: rand.New(src)}
}

// NewSeeded creates a deterministic bag.
func NewSeeded(seed int64) *Bag {
	return New(rand.NewSource(seed))
}

// Refill discards what is left and loads a shuffled set of all seven kinds.
func (b *Bag) Refill() {
	b.kinds = append(b.kinds[:0], piece.Kinds...)
	// Fisher-Yates shuffle
	for i := len(b.kinds) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	}
}

// Next removes and returns the top kind, refilling first if the bag is empty.
func (b *Bag) Next() piece.Kind {
	if len(b.kinds) == 0 {
		b.Refill()
	}
	k := b.kinds[len(b.kinds)-1]
	b.kinds = b.kinds[:len(b.kinds)-1]
	return k
}

// Len returns how many kinds remain before the next refill.
func (b *Bag) Len() int {
	return len(b.kinds)
}
