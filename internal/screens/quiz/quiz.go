package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
	"github.com/quizforge/quizforge/internal/screens/results"
	sess "github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/quizforge/quizforge/internal/ui/components"
	"github.com/quizforge/quizforge/internal/ui/layout"
	"github.com/quizforge/quizforge/internal/ui/theme"
)

// QuizScreen drives one quiz run. Generated questions carry the correct
// option at index 0, so the screen shuffles the display order per
// question and maps the chosen position back before recording it.
type QuizScreen struct {
	session    *sess.Session
	resultRepo store.ResultRepo
	source     string

	mc     components.MultiChoice
	perm   []int // display position → canonical option index
	rng    *rand.Rand
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for a started session.
func New(session *sess.Session, resultRepo store.ResultRepo, source string) *QuizScreen {
	s := &QuizScreen{
		session:    session,
		resultRepo: resultRepo,
		source:     source,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	s.loadCurrent()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Progress() string {
	return fmt.Sprintf("%d/%d", s.session.CurrentIndex()+1, s.session.Settings().QuestionCount)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Pending() {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-4", Description: "Pick"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadCurrent builds the multichoice for the session's current question
// with a fresh display shuffle.
func (s *QuizScreen) loadCurrent() {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return
	}

	s.perm = s.rng.Perm(len(q.Options))
	options := make([]string, len(q.Options))
	correctPos := 0
	for pos, canonical := range s.perm {
		options[pos] = q.Options[canonical]
		if canonical == q.CorrectIndex {
			correctPos = pos
		}
	}

	s.mc = components.NewMultiChoice(q.Text, options, correctPos)
	s.mc.Explanation = q.Explanation
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Immediate-mode feedback overlay: any key confirms and advances.
	if s.session.Pending() {
		if _, ok := msg.(tea.KeyMsg); ok {
			if err := s.session.Proceed(); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s.afterAdvance()
		}
		return s, nil
	}

	before := s.mc.Submitted
	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)

	if !before && s.mc.Submitted {
		return s.recordAnswer()
	}
	return s, cmd
}

// recordAnswer maps the chosen display position to its canonical index
// and feeds it to the session.
func (s *QuizScreen) recordAnswer() (screen.Screen, tea.Cmd) {
	canonical := s.perm[s.mc.ChosenIndex]
	if err := s.session.Answer(canonical); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if s.session.Settings().Mode == sess.ModeImmediate {
		s.mc.Revealed = true
		return s, nil
	}
	return s.afterAdvance()
}

// afterAdvance reloads the question view or hands off to results.
func (s *QuizScreen) afterAdvance() (screen.Screen, tea.Cmd) {
	if s.session.State() == sess.StateResults {
		session, repo, source := s.session, s.resultRepo, s.source
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(session, repo, source)}
		}
	}
	s.loadCurrent()
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	q, ok := s.session.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar("", s.progressPercent(), false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		difficultyBadge(q.Difficulty)))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-4, 76)).Render(s.mc.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if s.session.Pending() {
		verdict := theme.Incorrect.Render("Not quite.")
		if s.mc.IsCorrect() {
			verdict = theme.Correct.Render("Correct!")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) progressPercent() float64 {
	total := s.session.Settings().QuestionCount
	if total == 0 {
		return 0
	}
	return float64(s.session.CurrentIndex()) / float64(total)
}

func difficultyBadge(d quizgen.Difficulty) string {
	switch d {
	case quizgen.DifficultyEasy:
		return theme.DiffEasy.Render("● easy")
	case quizgen.DifficultyMedium:
		return theme.DiffMedium.Render("● medium")
	case quizgen.DifficultyHard:
		return theme.DiffHard.Render("● hard")
	}
	return string(d)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
