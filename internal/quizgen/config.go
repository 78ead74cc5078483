package quizgen

import "math/rand/v2"

// Config controls a local generation pipeline.
type Config struct {
	// Strategy selects the balancing behavior for over-full item lists.
	Strategy BalanceStrategy

	// Seed pins the distractor-selection random source. Zero means an
	// unseeded source; any other value makes runs reproducible.
	Seed uint64
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{Strategy: StrategyTruncate}
}

// newRand builds the per-run random source from the config.
func (c Config) newRand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
