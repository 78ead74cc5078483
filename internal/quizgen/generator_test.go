package quizgen

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// sampleDocument is long enough to chunk and carries capitalized phrases,
// stative facts, and difficulty indicators for every template to fire.
const sampleDocument = `The Roman Empire was one of the largest states of the ancient world. Its road network contains thousands of miles of engineered stone. However, the analysis of trade records suggests the economy depended on sea routes. The Mediterranean Sea was the empire's central highway for grain and goods. Furthermore, the evaluation of port ruins demonstrates heavy traffic at Ostia. The legions were stationed along rivers such as the Rhine and the Danube. Military roads connected distant provinces to the capital at Rome. Therefore, the hypothesis that roads alone held the empire together is too simple.`

func TestLocalGenerate_ExactCount(t *testing.T) {
	g := NewLocal(DefaultConfig())

	for _, count := range []int{MinQuestionCount, 12, MaxQuestionCount} {
		got, err := g.Generate(context.Background(), sampleDocument, count)
		if err != nil {
			t.Fatalf("Generate(count=%d): %v", count, err)
		}
		if len(got) != count {
			t.Errorf("Generate(count=%d) returned %d questions", count, len(got))
		}
		for i, q := range got {
			if q.ID != i+1 {
				t.Errorf("question %d has ID %d", i, q.ID)
			}
			if len(q.Options) != 4 {
				t.Errorf("question %d has %d options", i, len(q.Options))
			}
			if q.CorrectIndex != 0 {
				t.Errorf("question %d has correct index %d", i, q.CorrectIndex)
			}
		}
	}
}

func TestLocalGenerate_InvalidCount(t *testing.T) {
	g := NewLocal(DefaultConfig())

	for _, count := range []int{-1, 0, MinQuestionCount - 1, MaxQuestionCount + 1} {
		_, err := g.Generate(context.Background(), sampleDocument, count)
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Generate(count=%d) error = %v, want ErrInvalidCount", count, err)
		}
	}
}

func TestLocalGenerate_ContentLengthBoundary(t *testing.T) {
	g := NewLocal(DefaultConfig())

	short := strings.Repeat("a", MinContentLength-1)
	if _, err := g.Generate(context.Background(), short, MinQuestionCount); !errors.Is(err, ErrInsufficientContent) {
		t.Errorf("99-char text error = %v, want ErrInsufficientContent", err)
	}

	// Surrounding whitespace does not count toward the minimum.
	padded := "   " + short + "   \n"
	if _, err := g.Generate(context.Background(), padded, MinQuestionCount); !errors.Is(err, ErrInsufficientContent) {
		t.Errorf("padded short text error = %v, want ErrInsufficientContent", err)
	}

	exact := strings.Repeat("a", MinContentLength)
	got, err := g.Generate(context.Background(), exact, MinQuestionCount)
	if err != nil {
		t.Fatalf("100-char text: %v", err)
	}
	if len(got) != MinQuestionCount {
		t.Errorf("100-char text returned %d questions", len(got))
	}
}

func TestLocalGenerate_PlainProseFallsBackToGenericItems(t *testing.T) {
	g := NewLocal(DefaultConfig())

	// No capitalized phrases, no concept vocabulary, no stative verbs:
	// the analyzer finds nothing and every item is a generic excerpt.
	text := "the quick brown fox ran over the gentle rolling hills. the lazy dog slept near the tall garden fence. a flock of birds flew south before the winter came."
	got, err := g.Generate(context.Background(), text, MinQuestionCount)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != MinQuestionCount {
		t.Fatalf("got %d questions, want %d", len(got), MinQuestionCount)
	}
	for _, q := range got {
		if q.Difficulty != DifficultyEasy {
			t.Errorf("question %q difficulty = %q, want easy", q.Text, q.Difficulty)
		}
	}
}

func TestLocalGenerate_SeededRunsAreReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234

	a, err := NewLocal(cfg).Generate(context.Background(), sampleDocument, 10)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := NewLocal(cfg).Generate(context.Background(), sampleDocument, 10)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("seeded runs produced different question lists")
	}
}

func TestLocalGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewLocal(DefaultConfig())
	if _, err := g.Generate(ctx, sampleDocument, MinQuestionCount); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestSimpleGenerate_PadsWithFiller(t *testing.T) {
	text := "only one sentence long enough to survive the filter."
	got := simpleGenerate(text, 5)

	if len(got) != 5 {
		t.Fatalf("got %d questions, want 5", len(got))
	}
	if got[0].Difficulty != DifficultyMedium {
		t.Errorf("sentence question difficulty = %q, want medium", got[0].Difficulty)
	}
	for _, q := range got[1:] {
		if q.Difficulty != DifficultyEasy {
			t.Errorf("filler difficulty = %q, want easy", q.Difficulty)
		}
	}
	for i, q := range got {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d", i, q.ID)
		}
	}
}
