package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
	"github.com/quizforge/quizforge/internal/screens/history"
	sess "github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/quizforge/quizforge/internal/ui/layout"
	"github.com/quizforge/quizforge/internal/ui/theme"
)

// RestartRequestedMsg asks the app to reset the session and return to a
// fresh upload screen. Handled at the app level because the upload
// screen's dependencies live there.
type RestartRequestedMsg struct{}

// resultSavedMsg reports the history write.
type resultSavedMsg struct {
	Err error
}

// ResultsScreen shows the score breakdown and the per-question review
// for a finished session.
type ResultsScreen struct {
	session    *sess.Session
	resultRepo store.ResultRepo
	source     string
	summary    sess.Summary
	saveErr    string
	reviewing  bool
	reviewIdx  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. resultRepo may be nil; the score is then
// shown without being recorded.
func New(session *sess.Session, resultRepo store.ResultRepo, source string) *ResultsScreen {
	return &ResultsScreen{
		session:    session,
		resultRepo: resultRepo,
		source:     source,
		summary:    session.Summarize(),
	}
}

// Init persists the finished session to quiz history.
func (s *ResultsScreen) Init() tea.Cmd {
	if s.resultRepo == nil {
		return nil
	}

	repo := s.resultRepo
	result := store.QuizResult{
		SessionID:     s.session.ID(),
		Source:        s.source,
		QuestionCount: s.summary.Total,
		CorrectCount:  s.summary.Correct,
		Mode:          string(s.session.Settings().Mode),
		Duration:      s.session.Elapsed(),
	}
	return func() tea.Msg {
		return resultSavedMsg{Err: repo.Append(context.Background(), result)}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.reviewing {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "Esc", Description: "Score"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "New quiz"},
		{Key: "Enter", Description: "Review answers"},
		{Key: "Ctrl+H", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultSavedMsg:
		if msg.Err != nil {
			s.saveErr = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.reviewing {
		switch key {
		case "esc":
			s.reviewing = false
		case "up", "k":
			if s.reviewIdx > 0 {
				s.reviewIdx--
			}
		case "down", "j":
			if s.reviewIdx < s.summary.Total-1 {
				s.reviewIdx++
			}
		}
		return s, nil
	}

	switch key {
	case "r", "R":
		s.session.Restart()
		return s, func() tea.Msg { return RestartRequestedMsg{} }
	case "enter":
		s.reviewing = true
		s.reviewIdx = 0
	case "ctrl+h":
		if s.resultRepo != nil {
			repo := s.resultRepo
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo)}
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.reviewing {
		return s.renderReview(width)
	}
	return s.renderScore(width)
}

func (s *ResultsScreen) renderScore(width int) string {
	var b strings.Builder
	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(theme.Title.Render("Quiz complete!"))
	b.WriteString("\n")

	center(theme.Body.Render(fmt.Sprintf("Score: %d/%d  (%d%%)",
		s.summary.Correct, s.summary.Total, s.summary.Percent())))
	b.WriteString("\n")

	elapsed := s.session.Elapsed()
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	center(theme.Subtitle.Render(fmt.Sprintf("Time: %d:%02d    Source: %s", mins, secs, s.source)))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("By difficulty"))
	center(divider)
	b.WriteString("\n")

	for _, d := range []quizgen.Difficulty{quizgen.DifficultyEasy, quizgen.DifficultyMedium, quizgen.DifficultyHard} {
		dr, ok := s.summary.ByDifficulty[d]
		if !ok {
			continue
		}
		center(theme.Body.Render(fmt.Sprintf("%-8s %d/%d", d, dr.Correct, dr.Total)))
	}

	if s.saveErr != "" {
		b.WriteString("\n")
		center(theme.Hint.Render("history not saved: " + s.saveErr))
	}

	return b.String()
}

// renderReview shows one question with the learner's answer against the
// correct one.
func (s *ResultsScreen) renderReview(width int) string {
	questions := s.session.Questions()
	if s.reviewIdx >= len(questions) {
		return ""
	}
	q := questions[s.reviewIdx]

	var b strings.Builder
	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.reviewIdx+1, len(questions))))
	b.WriteString("\n")

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Text))
	body.WriteString("\n\n")

	chosen, answered := s.session.AnswerFor(s.reviewIdx)
	for i, opt := range q.Options {
		line := "  " + opt
		switch {
		case i == q.CorrectIndex:
			body.WriteString(theme.Correct.Render("✓ " + opt))
		case answered && i == chosen:
			body.WriteString(theme.Incorrect.Render("✗ " + opt))
		default:
			body.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		body.WriteString("\n")
	}
	if !answered {
		body.WriteString("\n")
		body.WriteString(theme.Hint.Render("Not answered"))
	}
	if q.Explanation != "" {
		body.WriteString("\n")
		body.WriteString(theme.Hint.Render(q.Explanation))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(body.String())
	center(card)

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
