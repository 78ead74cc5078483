package quizgen

import (
	"context"
	"strings"
)

// Generator is the single entry point for question generation. Both the
// local pipeline and the remote backend satisfy it.
type Generator interface {
	// Generate produces exactly count questions from the document text.
	// count must be within [MinQuestionCount, MaxQuestionCount] and the
	// trimmed text at least MinContentLength characters.
	Generate(ctx context.Context, text string, count int) ([]Question, error)
}

// LocalGenerator runs the deterministic rule-based pipeline:
// chunk → analyze → synthesize → balance, with a simplified sentence
// generator as the fallback when the pipeline comes up empty.
type LocalGenerator struct {
	cfg Config
}

// NewLocal creates a LocalGenerator with the given configuration.
func NewLocal(cfg Config) *LocalGenerator {
	if !cfg.Strategy.Valid() {
		cfg.Strategy = StrategyTruncate
	}
	return &LocalGenerator{cfg: cfg}
}

// Generate implements Generator.
func (g *LocalGenerator) Generate(ctx context.Context, text string, count int) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < MinContentLength {
		return nil, ErrInsufficientContent
	}

	synth := NewSynthesizer(g.cfg.newRand())

	items := g.pipeline(trimmed, count, synth)
	if len(items) == 0 {
		items = simpleGenerate(trimmed, count)
	}

	// The filler guarantee should make a wrong count impossible; treat
	// a miss as a generation failure rather than returning a bad list.
	if len(items) != count {
		return nil, ErrGenerationFailed
	}
	return items, nil
}

// pipeline runs the full chunked path. An empty result (no usable
// chunks, or synthesis produced nothing) signals the caller to fall
// back; it is not an error.
func (g *LocalGenerator) pipeline(text string, count int, synth *Synthesizer) []Question {
	chunks := ChunkText(text)
	if len(chunks) == 0 {
		return nil
	}

	analyzed := make([]AnalyzedChunk, len(chunks))
	for i, c := range chunks {
		analyzed[i] = Analyze(c)
	}

	items := synth.Synthesize(analyzed, count)
	if len(items) == 0 {
		return nil
	}

	balancer := NewBalancer(synth, g.cfg.Strategy, synth.rng)
	return balancer.Balance(items, analyzed, count)
}
