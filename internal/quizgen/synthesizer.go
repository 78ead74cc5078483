package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// maxOptionLength caps how much source text is quoted into an option.
const maxOptionLength = 100

// distractorPools holds the fixed plausible-but-wrong phrasings per item
// category. Three are drawn per question, in an order decided by the
// synthesizer's random source. This draw is the only run-to-run
// non-determinism in the whole pipeline; seed the source to pin it down.
var distractorPools = map[string][]string{
	"concept": {
		"It is dismissed as irrelevant to the main argument",
		"It is mentioned only as a historical footnote",
		"It is presented as a disproven idea",
		"It is attributed to an unnamed critic of the author",
	},
	"fact": {
		"The document explicitly denies this claim",
		"This is presented as an open question, not a fact",
		"This appears only in a quoted counterargument",
		"The document reports the reverse of this statement",
	},
	"inference": {
		"An assumption the document explicitly rejects",
		"A conclusion that contradicts the stated evidence",
		"A claim about an unrelated subject",
		"A restatement of the question itself",
	},
	"generic": {
		"This point is not found in the document",
		"The document states the opposite of this",
		"This is unrelated to the document's content",
	},
}

// Synthesizer turns analyzed chunks into question items. The correct
// option is always placed at index 0; display-order shuffling belongs to
// the presentation layer, which keeps synthesis output testable.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a Synthesizer using the given random source for
// distractor selection. A nil rng falls back to an unseeded source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Synthesizer{rng: rng}
}

// Synthesize produces up to requested questions from the analyzed chunks.
// Each chunk is responsible for a quota of floor(requested/min(chunks,
// requested)) items, with the remainder spread one-per-chunk over the
// first chunks. IDs are assigned later by the balancer.
func (s *Synthesizer) Synthesize(chunks []AnalyzedChunk, requested int) []Question {
	if len(chunks) == 0 || requested <= 0 {
		return nil
	}

	n := len(chunks)
	if n > requested {
		n = requested
	}
	base := requested / n
	remainder := requested % n

	var items []Question
	for i, ac := range chunks {
		if len(items) >= requested {
			break
		}
		quota := base
		if i < remainder {
			quota++
		}
		for _, q := range s.ChunkItems(ac, quota) {
			if len(items) >= requested {
				break
			}
			items = append(items, q)
		}
	}

	return items
}

// ChunkItems builds up to quota items from one chunk. Templates fire in a
// fixed order based on which features the analyzer found; generic
// excerpt items fill whatever the triggered templates leave open.
func (s *Synthesizer) ChunkItems(ac AnalyzedChunk, quota int) []Question {
	if quota <= 0 {
		return nil
	}

	var items []Question
	if len(ac.Concepts) > 0 {
		items = append(items, s.conceptItem(ac))
	}
	if len(items) < quota && len(ac.Facts) > 0 {
		items = append(items, s.factItem(ac))
	}
	if len(items) < quota && len(ac.KeyTerms) > 0 {
		items = append(items, s.termItem(ac))
	}
	if len(items) < quota && ac.Difficulty == DifficultyHard {
		items = append(items, s.inferenceItem(ac))
	}
	for len(items) < quota {
		items = append(items, s.genericItem(ac))
	}

	if len(items) > quota {
		items = items[:quota]
	}
	return items
}

func (s *Synthesizer) conceptItem(ac AnalyzedChunk) Question {
	concept := ac.Concepts[0]

	correct := fmt.Sprintf("The document discusses %s as part of its subject matter", concept)
	for _, sent := range splitSentences(ac.Content) {
		if strings.Contains(strings.ToLower(sent.text), strings.ToLower(concept)) {
			correct = truncate(sent.text, maxOptionLength)
			break
		}
	}

	return Question{
		Text:         fmt.Sprintf("According to the document, what is stated about %s?", concept),
		Options:      append([]string{correct}, s.pickDistractors("concept")...),
		CorrectIndex: 0,
		Explanation:  fmt.Sprintf("The passage addresses %s directly; the other options misstate its role.", concept),
		Difficulty:   ac.Difficulty,
	}
}

func (s *Synthesizer) factItem(ac AnalyzedChunk) Question {
	fact := truncate(ac.Facts[0], maxOptionLength)
	return Question{
		Text:         "Which of the following statements is supported by the document?",
		Options:      append([]string{fact}, s.pickDistractors("fact")...),
		CorrectIndex: 0,
		Explanation:  "This statement appears in the document; the alternatives do not.",
		Difficulty:   ac.Difficulty,
	}
}

// termItem uses fixed per-term negations rather than a shared pool, so
// every option names the term and reads as a claim about it.
func (s *Synthesizer) termItem(ac AnalyzedChunk) Question {
	term := ac.KeyTerms[0]
	correct := fmt.Sprintf("%s is a significant term mentioned in the document", term)
	distractors := []string{
		fmt.Sprintf("%s is never mentioned in the document", term),
		fmt.Sprintf("%s contradicts the document's main argument", term),
		fmt.Sprintf("%s is introduced only to be dismissed", term),
	}
	s.rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	return Question{
		Text:         fmt.Sprintf("Which statement about %s is accurate?", term),
		Options:      append([]string{correct}, distractors...),
		CorrectIndex: 0,
		Explanation:  fmt.Sprintf("%s appears in the analyzed passage.", term),
		Difficulty:   ac.Difficulty,
	}
}

func (s *Synthesizer) inferenceItem(ac AnalyzedChunk) Question {
	return Question{
		Text:         "What can be inferred from this section of the document?",
		Options:      append([]string{"A logical conclusion that follows from the stated material"}, s.pickDistractors("inference")...),
		CorrectIndex: 0,
		Explanation:  "The section supports this inference; the other options conflict with it.",
		Difficulty:   DifficultyHard,
	}
}

func (s *Synthesizer) genericItem(ac AnalyzedChunk) Question {
	return Question{
		Text:         "Which excerpt appears in the document?",
		Options:      append([]string{truncate(ac.Content, maxOptionLength)}, s.pickDistractors("generic")...),
		CorrectIndex: 0,
		Explanation:  "This excerpt is taken verbatim from the document.",
		Difficulty:   ac.Difficulty,
	}
}

// FillerQuestion is the fixed, content-independent item used to satisfy
// the exact-count guarantee when real synthesis is exhausted.
func (s *Synthesizer) FillerQuestion() Question {
	return Question{
		Text:         "Based on the document content, what is a key point mentioned?",
		Options:      append([]string{"A central topic developed across the document"}, s.pickDistractors("generic")...),
		CorrectIndex: 0,
		Explanation:  "The document develops this topic; the remaining options deny its content.",
		Difficulty:   DifficultyEasy,
	}
}

// pickDistractors draws three distinct entries from the named pool in
// random order.
func (s *Synthesizer) pickDistractors(category string) []string {
	pool := distractorPools[category]
	picks := make([]string, 0, 3)
	for _, idx := range s.rng.Perm(len(pool)) {
		picks = append(picks, pool[idx])
		if len(picks) == 3 {
			break
		}
	}
	return picks
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return strings.TrimSpace(text[:limit-3]) + "..."
}
