package quizgen

import (
	"reflect"
	"testing"
)

func TestAnalyze_Idempotent(t *testing.T) {
	c := Chunk{Content: "The Industrial Revolution was a period of major change. However, its analysis suggests the principle applies broadly."}
	first := Analyze(c)
	second := Analyze(c)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("analysis is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAnalyze_KeyTerms(t *testing.T) {
	c := Chunk{Content: "Alan Turing worked at Bletchley Park during the war. Alan Turing later proposed the Turing Test as a benchmark."}
	got := Analyze(c)

	want := []string{"Alan Turing", "Bletchley Park", "Turing Test"}
	if !reflect.DeepEqual(got.KeyTerms, want) {
		t.Errorf("key terms = %v, want %v", got.KeyTerms, want)
	}
}

func TestAnalyze_KeyTermsCappedAtFive(t *testing.T) {
	c := Chunk{Content: "Alpha Beta met Gamma Delta near Epsilon while Zeta and Theta and Kappa watched from Lambda."}
	got := Analyze(c)
	if len(got.KeyTerms) > maxKeyTerms {
		t.Errorf("key terms over cap: %v", got.KeyTerms)
	}
}

func TestAnalyze_ConceptsPreferVocabulary(t *testing.T) {
	c := Chunk{Content: "The underlying principle behind the method is explained by Isaac Newton in his major theory of motion."}
	got := Analyze(c)

	want := []string{"principle", "theory", "method"}
	if !reflect.DeepEqual(got.Concepts, want) {
		t.Errorf("concepts = %v, want %v", got.Concepts, want)
	}
}

func TestAnalyze_ConceptsFallBackToCapitalized(t *testing.T) {
	c := Chunk{Content: "Isaac Newton described gravity while observing the Royal Society gardens."}
	got := Analyze(c)
	if len(got.Concepts) == 0 || got.Concepts[0] != "Isaac Newton" {
		t.Errorf("concepts = %v, want capitalized phrases", got.Concepts)
	}
}

func TestAnalyze_Facts(t *testing.T) {
	c := Chunk{Content: "water boils at one hundred degrees celsius and this is well known. run fast. the ocean contains most of the planet's water by volume."}
	got := Analyze(c)

	if len(got.Facts) != 2 {
		t.Fatalf("facts = %v, want 2 entries", got.Facts)
	}
	if got.Facts[0] != "water boils at one hundred degrees celsius and this is well known." {
		t.Errorf("unexpected first fact: %q", got.Facts[0])
	}
}

func TestClassifyDifficulty_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Difficulty
	}{
		{
			name:    "no indicators",
			content: "the cat sat on the mat and looked around the quiet room",
			want:    DifficultyEasy,
		},
		{
			name:    "one connective",
			content: "the cat sat on the mat; however, the dog stayed outside",
			want:    DifficultyMedium,
		},
		{
			name:    "two indicators",
			content: "however, the analysis was incomplete",
			want:    DifficultyMedium,
		},
		{
			name:    "three indicators",
			content: "however, the analysis suggests a deeper cause",
			want:    DifficultyHard,
		},
		{
			name:    "repeated indicator counts each occurrence",
			content: "however and however and however again",
			want:    DifficultyHard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyDifficulty(tt.content); got != tt.want {
				t.Errorf("classifyDifficulty(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
