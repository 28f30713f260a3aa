package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// Weight is a tile value and its relative spawn weight.
type Weight struct {
	Value  int
	Weight int
}

// DefaultWeights spawns a 2 nine times out of ten and a 4 otherwise.
var DefaultWeights = []Weight{
	{Value: 2, Weight: 9},
	{Value: 4, Weight: 1},
}

// ErrNoWeights is returned when a spawner is built without any weights.
var ErrNoWeights = errors.New("board: no spawn weights")

// Spawner places new tiles on a board using its own random source.
type Spawner struct {
	rng     *rand.Rand
	weights []Weight
	total   int
}

// NewSpawner creates a spawner drawing from rng. Weights must be positive
// and values must be powers of two >= 2.
func NewSpawner(rng *rand.Rand, weights []Weight) (*Spawner, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}

	total := 0
	for _, w := range weights {
		if w.Value < 2 || !IsPowerOfTwo(w.Value) {
			return nil, fmt.Errorf("board: spawn value %d is not a power of two >= 2", w.Value)
		}
		if w.Weight <= 0 {
			return nil, fmt.Errorf("board: spawn weight for %d must be positive, got %d", w.Value, w.Weight)
		}
		total += w.Weight
	}

	return &Spawner{
		rng:     rng,
		weights: append([]Weight(nil), weights...),
		total:   total,
	}, nil
}

// Spawn puts one tile into a uniformly chosen empty cell of b.
// Returns the new board, the index that was filled and false if b was full.
func (s *Spawner) Spawn(b Board) (Board, int, bool) {
	empty := b.Empty()
	if len(empty) == 0 {
		return b, -1, false
	}

	pos := empty[s.rng.Intn(len(empty))]
	b[pos] = s.value()
	return b, pos, true
}

// value draws a tile value according to the configured weights.
func (s *Spawner) value() int {
	r := s.rng.Intn(s.total)
	for _, w := range s.weights {
		if r < w.Weight {
			return w.Value
		}
		r -= w.Weight
	}
	return s.weights[len(s.weights)-1].Value
}

// Seed returns the opening board: two 2-tiles placed at the first two
// cells, then every cell shuffled into a random permutation.
func Seed(rng *rand.Rand) Board {
	var b Board
	b[0] = 2
	b[1] = 2
	rng.Shuffle(len(b), func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
	return b
}
