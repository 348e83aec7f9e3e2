package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/nolanpeet/stakehouse/internal/dice Roller

// Roller provides the randomness rule modules consume: die rolls for board
// movement and permutations for deck shuffles.
type Roller interface {
	Roll(sides int) int
	Perm(n int) []int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller implements Roller with a seeded source
type roller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &roller{
		random: rand.New(source),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Perm returns a random permutation of [0, n)
func (r *roller) Perm(n int) []int {
	return r.random.Perm(n)
}
