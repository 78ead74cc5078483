package quizgen

import (
	"regexp"
	"strings"
)

const (
	maxKeyTerms = 5
	maxConcepts = 3
	maxFacts    = 3

	// minFactLength filters out sentences too short to stand alone as a
	// factual statement.
	minFactLength = 30
)

// capitalizedPhrase matches runs of capitalized words ("Neural Networks",
// "Rome"). Sentence-initial words match too; that is part of the
// heuristic, not a bug to fix.
var capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)*\b`)

// conceptVocabulary is the fixed set of meta-words that flag a sentence
// as talking about an abstract idea.
var conceptVocabulary = []string{
	"concept", "principle", "theory", "method", "approach", "strategy", "technique",
}

// stativeVerb marks sentences that state something about the world.
var stativeVerb = regexp.MustCompile(`(?i)\b(is|are|was|were|has|have|contains|shows|indicates|demonstrates)\b`)

// The three indicator families behind the difficulty score. A chunk
// scoring at least 3 total hits is hard, at least 1 is medium, otherwise
// easy. Purely lexical; there is no model behind this.
var (
	discourseConnectives = regexp.MustCompile(`(?i)\b(however|furthermore|therefore|moreover|consequently|nevertheless|whereas|conversely)\b`)
	analyticalTerms      = regexp.MustCompile(`(?i)\b(analysis|synthesis|evaluation|hypothesis|methodology|framework|assessment)\b`)
	inferentialVerbs     = regexp.MustCompile(`(?i)\b(implies|suggests|demonstrates|indicates|infers|concludes|reveals)\b`)
)

// Analyze extracts key terms, concepts, facts, and a difficulty label
// from one chunk. It holds no state: the same chunk always produces the
// same AnalyzedChunk.
func Analyze(c Chunk) AnalyzedChunk {
	return AnalyzedChunk{
		Content:    c.Content,
		KeyTerms:   extractKeyTerms(c.Content),
		Concepts:   extractConcepts(c.Content),
		Facts:      extractFacts(c.Content),
		Difficulty: classifyDifficulty(c.Content),
	}
}

func extractKeyTerms(content string) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, m := range capitalizedPhrase.FindAllString(content, -1) {
		if len(m) <= 3 || seen[m] {
			continue
		}
		seen[m] = true
		terms = append(terms, m)
		if len(terms) == maxKeyTerms {
			break
		}
	}
	return terms
}

func extractConcepts(content string) []string {
	var concepts []string
	seen := make(map[string]bool)
	lower := strings.ToLower(content)

	for _, word := range conceptVocabulary {
		if strings.Contains(lower, word) && !seen[word] {
			seen[word] = true
			concepts = append(concepts, word)
			if len(concepts) == maxConcepts {
				return concepts
			}
		}
	}

	for _, m := range capitalizedPhrase.FindAllString(content, -1) {
		if len(m) <= 3 || seen[m] {
			continue
		}
		seen[m] = true
		concepts = append(concepts, m)
		if len(concepts) == maxConcepts {
			break
		}
	}

	return concepts
}

func extractFacts(content string) []string {
	var facts []string
	for _, s := range splitSentences(content) {
		if len(s.text) > minFactLength && stativeVerb.MatchString(s.text) {
			facts = append(facts, s.text)
			if len(facts) == maxFacts {
				break
			}
		}
	}
	return facts
}

func classifyDifficulty(content string) Difficulty {
	score := len(discourseConnectives.FindAllString(content, -1)) +
		len(analyticalTerms.FindAllString(content, -1)) +
		len(inferentialVerbs.FindAllString(content, -1))

	switch {
	case score >= 3:
		return DifficultyHard
	case score >= 1:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}
