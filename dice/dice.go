// Package dice implements dice-notation parsing and seeded uniform rolls.
package dice

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// Limits for parsed dice notation.
const (
	MinCount = 1
	MaxCount = 100
	MinSides = 2
	MaxSides = 1000
)

// Notation describes a parsed dice expression such as "2d6".
type Notation struct {
	Count int
	Sides int
}

// ParseNotation parses expressions like "1d20", "2d6" or "d8" (count
// defaults to 1). The input is trimmed and lowercased first.
//
// Malformed input is an absence, not an error: any string that does not
// contain exactly one separator, has non-numeric parts, or falls outside
// the count/sides limits yields (Notation{}, false). ParseNotation never
// panics.
func ParseNotation(s string) (Notation, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	parts := strings.Split(s, "d")
	if len(parts) != 2 {
		return Notation{}, false
	}

	count := 1
	if countPart := strings.TrimSpace(parts[0]); countPart != "" {
		n, err := strconv.Atoi(countPart)
		if err != nil {
			return Notation{}, false
		}
		count = n
	}

	sides, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Notation{}, false
	}

	if count < MinCount || count > MaxCount {
		return Notation{}, false
	}
	if sides < MinSides || sides > MaxSides {
		return Notation{}, false
	}

	return Notation{Count: count, Sides: sides}, true
}

// Roller draws uniform random integers from a seeded source. The internal
// lock keeps concurrent tool calls safe while still allowing a fixed seed
// for deterministic tests.
type Roller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRoller creates a roller seeded with the provided value. The same seed
// always produces the same sequence of draws.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform value in [1, sides].
func (r *Roller) Roll(sides int) int {
	return r.Between(1, sides)
}

// Between returns a uniform value in the closed range [lo, hi].
func (r *Roller) Between(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.Intn(hi-lo+1)
}

// Pick returns a uniform index in [0, n).
func (r *Roller) Pick(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}
