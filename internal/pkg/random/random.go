// Package random provides the dice rollers the generator draws from.
//
// Production runs use the rpg-toolkit crypto roller. Reproducible runs and
// tests use a seeded roller so a seed always yields the same sheet.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// SeededRoller is a deterministic dice.Roller
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Ensure SeededRoller implements dice.Roller
var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}

	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// NewRoller returns the crypto roller for seed 0 and a seeded roller otherwise
func NewRoller(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return NewSeededRoller(seed)
}

// NewSeed generates a random seed using crypto/rand
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}
