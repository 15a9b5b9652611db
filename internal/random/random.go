// Package random is the injectable randomness used by the loot generators.
package random

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

//go:generate mockgen -destination=mock/mock.go -package=randommock github.com/KirkDiggler/rpg-compendium/internal/random Source

// Source supplies uniform random numbers.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// resolution is the die size used to build Float64 values.
const resolution = 1_000_000

// DiceSource draws from a dice.Roller.
type DiceSource struct {
	roller dice.Roller
}

// NewDiceSource wraps roller. A nil roller uses dice.DefaultRoller.
func NewDiceSource(roller dice.Roller) *DiceSource {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &DiceSource{roller: roller}
}

// Float64 rolls a d1000000 and maps it onto [0, 1).
func (s *DiceSource) Float64() float64 {
	return float64(s.roll(resolution)-1) / resolution
}

// Intn rolls a dn and shifts it to [0, n).
func (s *DiceSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: Intn called with n=%d", n))
	}
	if n == 1 {
		return 0
	}
	return s.roll(n) - 1
}

func (s *DiceSource) roll(size int) int {
	v, err := s.roller.Roll(size)
	if err != nil {
		// the default roller only fails on invalid sizes, which callers guard
		panic(fmt.Sprintf("random: roll d%d failed: %v", size, err))
	}
	return v
}

// Sequence replays fixed values for deterministic tests. Both sequences wrap
// around when exhausted; an empty sequence yields zero.
type Sequence struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewSequence creates a Sequence returning floats in order from Float64.
func NewSequence(floats ...float64) *Sequence {
	return &Sequence{floats: floats}
}

// WithInts sets the values returned by Intn, each taken modulo n.
func (s *Sequence) WithInts(ints ...int) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = ints
	s.ii = 0
	return s
}

// Float64 returns the next float in the sequence.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

// Intn returns the next int in the sequence modulo n.
func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}
