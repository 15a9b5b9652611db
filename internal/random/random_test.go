package random_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-compendium/internal/random"
)

type fixedRoller struct {
	value int
	err   error
	sizes []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if r.err != nil {
		return 0, r.err
	}
	return min(r.value, size), nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func TestDiceSource_Float64(t *testing.T) {
	roller := &fixedRoller{value: 1}
	src := random.NewDiceSource(roller)
	assert.Equal(t, 0.0, src.Float64())

	roller.value = 1_000_000
	assert.InDelta(t, 0.999999, src.Float64(), 1e-12)
	assert.Equal(t, []int{1_000_000, 1_000_000}, roller.sizes)
}

func TestDiceSource_Intn(t *testing.T) {
	roller := &fixedRoller{value: 4}
	src := random.NewDiceSource(roller)

	assert.Equal(t, 3, src.Intn(6))
	assert.Equal(t, 0, src.Intn(1))
	assert.Equal(t, []int{6}, roller.sizes, "n=1 must not roll")
}

func TestDiceSource_PanicsOnRollerError(t *testing.T) {
	src := random.NewDiceSource(&fixedRoller{err: errors.New("broken")})
	assert.Panics(t, func() { src.Float64() })
	assert.Panics(t, func() { src.Intn(0) })
}

func TestDiceSource_DefaultRollerStaysInRange(t *testing.T) {
	src := random.NewDiceSource(nil)
	for i := 0; i < 200; i++ {
		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := src.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}

func TestSequence(t *testing.T) {
	seq := random.NewSequence(0.1, 0.9).WithInts(5, 1)

	assert.Equal(t, 0.1, seq.Float64())
	assert.Equal(t, 0.9, seq.Float64())
	assert.Equal(t, 0.1, seq.Float64())

	assert.Equal(t, 2, seq.Intn(3))
	assert.Equal(t, 1, seq.Intn(3))
}

func TestSequence_Empty(t *testing.T) {
	seq := random.NewSequence()
	assert.Equal(t, 0.0, seq.Float64())
	assert.Equal(t, 0, seq.Intn(4))
}
