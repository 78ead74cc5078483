package quizgen

import "math/rand/v2"

// BalanceStrategy selects how an over-full item list is cut down to the
// requested count. Both strategies exist in the wild for this pipeline;
// the choice is explicit configuration, not an implementation detail.
type BalanceStrategy string

const (
	// StrategyTruncate keeps the first N items in synthesis order.
	StrategyTruncate BalanceStrategy = "truncate"

	// StrategyQuota targets a 40% easy / 40% medium / 20% hard mix by
	// slicing per-difficulty buckets before truncating.
	StrategyQuota BalanceStrategy = "quota"
)

// Valid reports whether s names a known strategy.
func (s BalanceStrategy) Valid() bool {
	return s == StrategyTruncate || s == StrategyQuota
}

// Balancer reconciles a synthesized item list against the requested
// count: padding by re-synthesis and filler when short, truncating by
// the configured strategy when long. Output length is always exactly the
// requested count.
type Balancer struct {
	synth    *Synthesizer
	strategy BalanceStrategy
	rng      *rand.Rand
}

// NewBalancer creates a Balancer. The rng picks which chunks to revisit
// when padding; sharing the synthesizer's seeded source keeps a whole
// run reproducible.
func NewBalancer(synth *Synthesizer, strategy BalanceStrategy, rng *rand.Rand) *Balancer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Balancer{synth: synth, strategy: strategy, rng: rng}
}

// Balance returns exactly requested items. It never fails: once real
// synthesis is exhausted, fixed filler items make up the difference.
func (b *Balancer) Balance(items []Question, chunks []AnalyzedChunk, requested int) []Question {
	if requested <= 0 {
		return nil
	}

	if len(items) < requested {
		items = b.pad(items, chunks, requested)
	}

	if len(items) > requested {
		switch b.strategy {
		case StrategyQuota:
			items = b.applyQuota(items, requested)
		default:
			items = items[:requested]
		}
	}

	for len(items) < requested {
		items = append(items, b.synth.FillerQuestion())
	}

	for i := range items {
		items[i].ID = i + 1
	}
	return items
}

// pad revisits random chunks to squeeze out items not yet in the list.
// Each round visits at most len(chunks) random chunks; a round that adds
// nothing ends the loop so exhausted input cannot spin forever.
func (b *Balancer) pad(items []Question, chunks []AnalyzedChunk, requested int) []Question {
	if len(chunks) == 0 {
		return items
	}

	seen := make(map[string]bool, len(items))
	for _, q := range items {
		seen[itemKey(q)] = true
	}

	for len(items) < requested {
		added := false
		for attempt := 0; attempt < len(chunks); attempt++ {
			ac := chunks[b.rng.IntN(len(chunks))]
			for _, q := range b.synth.ChunkItems(ac, 4) {
				if !seen[itemKey(q)] {
					seen[itemKey(q)] = true
					items = append(items, q)
					added = true
					break
				}
			}
			if added {
				break
			}
		}
		if !added {
			break
		}
	}

	return items
}

// applyQuota slices per-difficulty buckets to the 40/40/20 targets, then
// tops up from the leftovers in synthesis order.
func (b *Balancer) applyQuota(items []Question, requested int) []Question {
	easyTarget := requested * 40 / 100
	mediumTarget := requested * 40 / 100
	hardTarget := requested - easyTarget - mediumTarget

	targets := map[Difficulty]int{
		DifficultyEasy:   easyTarget,
		DifficultyMedium: mediumTarget,
		DifficultyHard:   hardTarget,
	}

	taken := make([]bool, len(items))
	picked := make([]Question, 0, requested)
	counts := make(map[Difficulty]int)

	for i, q := range items {
		if counts[q.Difficulty] < targets[q.Difficulty] {
			counts[q.Difficulty]++
			taken[i] = true
			picked = append(picked, q)
		}
	}

	for i, q := range items {
		if len(picked) == requested {
			break
		}
		if !taken[i] {
			picked = append(picked, q)
		}
	}

	if len(picked) > requested {
		picked = picked[:requested]
	}
	return picked
}

// itemKey identifies an item for padding dedup. Question text alone is
// not enough: excerpt templates reuse the same prompt with different
// correct options.
func itemKey(q Question) string {
	key := q.Text
	if len(q.Options) > 0 {
		key += "\x00" + q.Options[0]
	}
	return key
}
