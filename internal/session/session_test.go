package session

import (
	"errors"
	"testing"

	"github.com/quizforge/quizforge/internal/quizgen"
)

func twoQuestions() []quizgen.Question {
	return []quizgen.Question{
		{
			ID:           1,
			Text:         "first",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
			Difficulty:   quizgen.DifficultyEasy,
		},
		{
			ID:           2,
			Text:         "second",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 2,
			Difficulty:   quizgen.DifficultyHard,
		},
	}
}

func startEndMode(t *testing.T) *Session {
	t.Helper()
	s := New()
	if err := s.Start(twoQuestions(), Settings{QuestionCount: 2, Mode: ModeEnd}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestNew_StartsInUpload(t *testing.T) {
	s := New()
	if s.State() != StateUpload {
		t.Errorf("state = %v, want upload", s.State())
	}
	if s.ID() == "" {
		t.Error("session has no ID")
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("upload state should have no current question")
	}
}

func TestStart_Validation(t *testing.T) {
	s := New()

	if err := s.Start(nil, Settings{QuestionCount: 2, Mode: ModeEnd}); err == nil {
		t.Error("Start with no questions should fail")
	}
	if err := s.Start(twoQuestions(), Settings{QuestionCount: 3, Mode: ModeEnd}); err == nil {
		t.Error("Start with a count mismatch should fail")
	}
	if err := s.Start(twoQuestions(), Settings{QuestionCount: 2, Mode: "sometimes"}); err == nil {
		t.Error("Start with an unknown mode should fail")
	}
	if err := s.Start(twoQuestions(), Settings{QuestionCount: 0, Mode: ModeEnd}); err == nil {
		t.Error("Start with a zero count should fail")
	}
	if s.State() != StateUpload {
		t.Errorf("failed starts moved the state to %v", s.State())
	}

	if err := s.Start(twoQuestions(), Settings{QuestionCount: 2, Mode: ModeEnd}); err != nil {
		t.Fatalf("valid Start: %v", err)
	}
	if err := s.Start(twoQuestions(), Settings{QuestionCount: 2, Mode: ModeEnd}); err == nil {
		t.Error("Start from the quiz state should fail")
	}
}

func TestAnswer_EndModeAdvancesThroughToResults(t *testing.T) {
	s := startEndMode(t)

	if s.CurrentIndex() != 0 {
		t.Fatalf("current index = %d at start", s.CurrentIndex())
	}
	if err := s.Answer(0); err != nil {
		t.Fatalf("first Answer: %v", err)
	}
	if s.State() != StateQuiz || s.CurrentIndex() != 1 {
		t.Fatalf("after first answer: state %v, index %d", s.State(), s.CurrentIndex())
	}
	if err := s.Answer(2); err != nil {
		t.Fatalf("second Answer: %v", err)
	}
	if s.State() != StateResults {
		t.Errorf("state = %v after last answer, want results", s.State())
	}
	// The index stays on the last question so results can reference it.
	if s.CurrentIndex() != 1 {
		t.Errorf("current index = %d, want 1", s.CurrentIndex())
	}

	want := map[int]int{0: 0, 1: 2}
	got := s.Answers()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("answers = %v, want %v", got, want)
	}
}

func TestAnswer_OutsideQuizState(t *testing.T) {
	s := New()
	if err := s.Answer(0); !errors.Is(err, ErrNotInQuiz) {
		t.Errorf("Answer in upload = %v, want ErrNotInQuiz", err)
	}

	s = startEndMode(t)
	s.Answer(0)
	s.Answer(0)
	if err := s.Answer(0); !errors.Is(err, ErrNotInQuiz) {
		t.Errorf("Answer in results = %v, want ErrNotInQuiz", err)
	}
}

func TestAnswer_OptionIndexRange(t *testing.T) {
	s := startEndMode(t)
	if err := s.Answer(-1); err == nil {
		t.Error("negative option index should fail")
	}
	if err := s.Answer(4); err == nil {
		t.Error("option index past the options should fail")
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("bad answers advanced the session to index %d", s.CurrentIndex())
	}
}

func TestAnswer_ImmediateModeWaitsForProceed(t *testing.T) {
	s := New()
	if err := s.Start(twoQuestions(), Settings{QuestionCount: 2, Mode: ModeImmediate}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := s.Proceed(); !errors.Is(err, ErrNoPendingAnswer) {
		t.Errorf("Proceed before answering = %v, want ErrNoPendingAnswer", err)
	}

	if err := s.Answer(1); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !s.Pending() {
		t.Error("answer should be pending confirmation")
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("answered question advanced without Proceed: index %d", s.CurrentIndex())
	}

	// Re-answering the same question is a no-op, not an error, so the UI
	// can keep accepting selection events during feedback.
	if err := s.Answer(3); err != nil {
		t.Errorf("repeat Answer in immediate mode = %v, want nil", err)
	}
	if got, _ := s.AnswerFor(0); got != 1 {
		t.Errorf("repeat answer overwrote the record: %d", got)
	}

	if err := s.Proceed(); err != nil {
		t.Fatalf("Proceed: %v", err)
	}
	if s.CurrentIndex() != 1 || s.Pending() {
		t.Errorf("after Proceed: index %d, pending %v", s.CurrentIndex(), s.Pending())
	}

	s.Answer(2)
	if err := s.Proceed(); err != nil {
		t.Fatalf("final Proceed: %v", err)
	}
	if s.State() != StateResults {
		t.Errorf("state = %v after final Proceed, want results", s.State())
	}
}

func TestAnswer_EndModeRejectsReanswer(t *testing.T) {
	s := startEndMode(t)
	s.Answer(0)

	// Index 1 is unanswered; answering it twice is impossible in end mode
	// because the first answer advances. The error path needs the current
	// question to already hold an answer, which only a stuck advance
	// could produce, so drive it directly through the map.
	s.mu.Lock()
	s.answers[s.current] = 3
	s.mu.Unlock()

	if err := s.Answer(0); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("re-answer in end mode = %v, want ErrAlreadyAnswered", err)
	}
}

func TestRestart_ClearsEverything(t *testing.T) {
	s := startEndMode(t)
	oldID := s.ID()
	s.Answer(0)
	s.Answer(1)

	s.Restart()

	if s.State() != StateUpload {
		t.Errorf("state = %v after restart", s.State())
	}
	if s.ID() == oldID {
		t.Error("restart kept the old session ID")
	}
	if len(s.Questions()) != 0 {
		t.Error("restart kept the question list")
	}
	if len(s.Answers()) != 0 {
		t.Error("restart kept recorded answers")
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("restart left index at %d", s.CurrentIndex())
	}
	if got := s.Settings(); got != DefaultSettings() {
		t.Errorf("restart kept settings %+v", got)
	}
	if s.Elapsed() != 0 {
		t.Error("restart kept the start time")
	}

	if err := s.Start(twoQuestions(), Settings{QuestionCount: 2, Mode: ModeEnd}); err != nil {
		t.Errorf("Start after restart: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s := startEndMode(t)
	s.Answer(0) // correct (easy)
	s.Answer(1) // wrong (hard, correct is 2)

	sum := s.Summarize()
	if sum.Total != 2 || sum.Correct != 1 {
		t.Errorf("summary = %d/%d, want 1/2", sum.Correct, sum.Total)
	}
	if sum.Percent() != 50 {
		t.Errorf("percent = %d, want 50", sum.Percent())
	}
	easy := sum.ByDifficulty[quizgen.DifficultyEasy]
	if easy.Total != 1 || easy.Correct != 1 {
		t.Errorf("easy breakdown = %+v", easy)
	}
	hard := sum.ByDifficulty[quizgen.DifficultyHard]
	if hard.Total != 1 || hard.Correct != 0 {
		t.Errorf("hard breakdown = %+v", hard)
	}
}

func TestSummarize_UnansweredCountsAsWrong(t *testing.T) {
	s := startEndMode(t)
	s.Answer(0)

	sum := s.Summarize()
	if sum.Total != 2 || sum.Correct != 1 {
		t.Errorf("summary = %d/%d, want 1/2", sum.Correct, sum.Total)
	}
}

func TestPercent_EmptySummary(t *testing.T) {
	if got := (Summary{}).Percent(); got != 0 {
		t.Errorf("empty summary percent = %d, want 0", got)
	}
}
