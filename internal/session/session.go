// Package session holds the quiz session state machine: a linear
// upload → quiz → results flow driven by answer events, with a full
// restart as the only cycle.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/quizgen"
)

// State is the session's lifecycle state.
type State int

const (
	// StateUpload is the initial state: no questions loaded yet.
	StateUpload State = iota

	// StateQuiz means questions are loaded and being answered.
	StateQuiz

	// StateResults is terminal until Restart.
	StateResults
)

func (s State) String() string {
	switch s {
	case StateUpload:
		return "upload"
	case StateQuiz:
		return "quiz"
	case StateResults:
		return "results"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Mode selects when answer feedback is shown.
type Mode string

const (
	// ModeImmediate shows feedback after each answer; advancing waits
	// for an explicit Proceed call.
	ModeImmediate Mode = "immediate"

	// ModeEnd defers all feedback to the results view; answering
	// advances right away.
	ModeEnd Mode = "end"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeImmediate || m == ModeEnd
}

// Settings configures a quiz before generation.
type Settings struct {
	QuestionCount int
	Mode          Mode
}

// DefaultSettings returns the standard quiz settings.
func DefaultSettings() Settings {
	return Settings{QuestionCount: 10, Mode: ModeEnd}
}

// Validate checks that the settings are usable. The [MinQuestionCount,
// MaxQuestionCount] range is enforced where questions are generated;
// the state machine itself runs any non-empty list.
func (s Settings) Validate() error {
	if s.QuestionCount <= 0 {
		return fmt.Errorf("question count %d must be positive", s.QuestionCount)
	}
	if !s.Mode.Valid() {
		return fmt.Errorf("unknown mode %q", s.Mode)
	}
	return nil
}

var (
	// ErrNotInQuiz is returned by answer operations outside StateQuiz.
	ErrNotInQuiz = errors.New("session is not in the quiz state")

	// ErrAlreadyAnswered is returned when the current question already
	// has a recorded answer.
	ErrAlreadyAnswered = errors.New("current question is already answered")

	// ErrNoPendingAnswer is returned by Proceed when the current
	// question has not been answered yet.
	ErrNoPendingAnswer = errors.New("no answer pending confirmation")
)

// Session tracks one quiz run. All mutation goes through the methods
// below; the mutex serializes access since answer and restart events
// can arrive from different goroutines in a TUI program.
type Session struct {
	mu sync.Mutex

	id        string
	state     State
	settings  Settings
	questions []quizgen.Question
	current   int
	answers   map[int]int
	pending   bool // immediate mode: answered, awaiting Proceed
	startedAt time.Time
}

// New creates a Session in the upload state.
func New() *Session {
	return &Session{
		id:       uuid.NewString(),
		state:    StateUpload,
		settings: DefaultSettings(),
		answers:  make(map[int]int),
	}
}

// Start moves upload → quiz with a freshly generated question list.
// The question list length must match the settings' count.
func (s *Session) Start(questions []quizgen.Question, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUpload {
		return fmt.Errorf("cannot start a session in the %s state", s.state)
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if len(questions) == 0 {
		return errors.New("cannot start a session without questions")
	}
	if len(questions) != settings.QuestionCount {
		return fmt.Errorf("got %d questions for a %d-question quiz", len(questions), settings.QuestionCount)
	}

	s.settings = settings
	s.questions = questions
	s.current = 0
	s.answers = make(map[int]int, len(questions))
	s.pending = false
	s.startedAt = time.Now()
	s.state = StateQuiz
	return nil
}

// Answer records the chosen option for the current question.
//
// In end mode the answer is final on submit and the session advances
// immediately, transitioning to results after the last question. In
// immediate mode the first answer is recorded and the session waits for
// Proceed; further Answer calls for the same question are ignored so the
// UI can re-highlight options without changing the record.
func (s *Session) Answer(optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateQuiz {
		return ErrNotInQuiz
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[s.current].Options) {
		return fmt.Errorf("option index %d out of range", optionIndex)
	}

	if _, answered := s.answers[s.current]; answered {
		if s.settings.Mode == ModeImmediate {
			// First click already recorded; nothing to do.
			return nil
		}
		return ErrAlreadyAnswered
	}

	s.answers[s.current] = optionIndex

	if s.settings.Mode == ModeImmediate {
		s.pending = true
		return nil
	}

	s.advance()
	return nil
}

// Proceed confirms the feedback display in immediate mode and advances
// to the next question (or results after the last one).
func (s *Session) Proceed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateQuiz {
		return ErrNotInQuiz
	}
	if !s.pending {
		return ErrNoPendingAnswer
	}

	s.pending = false
	s.advance()
	return nil
}

// advance moves to the next question or to results after the last one.
// Caller holds the lock. currentIndex never exceeds len(questions)-1.
func (s *Session) advance() {
	if s.current < len(s.questions)-1 {
		s.current++
		return
	}
	s.state = StateResults
}

// Restart clears all accumulated state and returns to the upload state
// with default settings.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = uuid.NewString()
	s.state = StateUpload
	s.settings = DefaultSettings()
	s.questions = nil
	s.current = 0
	s.answers = make(map[int]int)
	s.pending = false
	s.startedAt = time.Time{}
}

// ID returns the session's UUID.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Settings returns the active settings.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// CurrentIndex returns the index of the question being answered.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentQuestion returns the active question, or false outside the
// quiz state.
func (s *Session) CurrentQuestion() (quizgen.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateQuiz {
		return quizgen.Question{}, false
	}
	return s.questions[s.current], true
}

// Questions returns the loaded question list.
func (s *Session) Questions() []quizgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions
}

// Answers returns a copy of the recorded answers, keyed by question
// index.
func (s *Session) Answers() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// AnswerFor returns the recorded answer for a question index.
func (s *Session) AnswerFor(questionIndex int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[questionIndex]
	return a, ok
}

// Pending reports whether an immediate-mode answer is awaiting Proceed.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Elapsed returns the time since the quiz started.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startedAt.IsZero() {
		return 0
	}
	return time.Since(s.startedAt)
}
