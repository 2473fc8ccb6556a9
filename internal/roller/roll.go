package roller

import (
	"fmt"
	"math/rand"
)

// DefaultMaxTotalDice bounds the total number of dice a single roll may
// generate across all waves. The Rule of Six chain terminates almost surely,
// but the loop is bounded anyway so a degenerate random source cannot spin
// forever; realistic pools never come near the cap.
const DefaultMaxTotalDice = 1000

// Source supplies uniform random integers. math/rand's Rand satisfies it;
// tests substitute a scripted source.
type Source interface {
	// Intn returns a uniform random int in [0, n).
	Intn(n int) int
}

// Wave is one generation of die faces. Wave 0 is the initial pool; each six
// in wave n spawns one die in wave n+1 when edge is active.
type Wave []int

// Roller rolls dice pools from a random source.
type Roller struct {
	src          Source
	maxTotalDice int
}

// Config holds configuration for a Roller. Zero values select the shared
// math/rand source and DefaultMaxTotalDice.
type Config struct {
	Source       Source
	MaxTotalDice int
}

// mathRandSource adapts the shared math/rand generator, which is safe for
// concurrent use.
type mathRandSource struct{}

func (mathRandSource) Intn(n int) int { return rand.Intn(n) }

// New creates a Roller with the given configuration.
func New(cfg *Config) *Roller {
	r := &Roller{
		src:          mathRandSource{},
		maxTotalDice: DefaultMaxTotalDice,
	}
	if cfg != nil {
		if cfg.Source != nil {
			r.src = cfg.Source
		}
		if cfg.MaxTotalDice > 0 {
			r.maxTotalDice = cfg.MaxTotalDice
		}
	}
	return r
}

// Roll rolls diceCount d6 and returns the waves in generation order. Without
// edge the result is a single wave. With edge, each wave's sixes are rerolled
// as a fresh wave until a wave contains no sixes or the total-dice cap is hit.
//
// The parser is the only legitimate producer of diceCount; values below
// MinDice are a programming error and panic.
func (r *Roller) Roll(diceCount int, edge bool) []Wave {
	if diceCount < MinDice {
		panic(fmt.Sprintf("roller: dice count %d out of range", diceCount))
	}

	var waves []Wave
	pool := diceCount
	total := 0
	for pool > 0 && total < r.maxTotalDice {
		if remaining := r.maxTotalDice - total; pool > remaining {
			pool = remaining
		}
		wave := make(Wave, pool)
		for i := range wave {
			wave[i] = r.src.Intn(6) + 1
		}
		total += pool
		waves = append(waves, wave)

		if !edge {
			break
		}
		pool = countFace(wave, 6)
	}
	return waves
}

// countFace counts dice in the wave showing exactly face.
func countFace(w Wave, face int) int {
	n := 0
	for _, d := range w {
		if d == face {
			n++
		}
	}
	return n
}
