package upload

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
	"github.com/quizforge/quizforge/internal/screens/history"
	"github.com/quizforge/quizforge/internal/screens/quiz"
	sess "github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/quizforge/quizforge/internal/ui/components"
	"github.com/quizforge/quizforge/internal/ui/layout"
	"github.com/quizforge/quizforge/internal/ui/theme"
)

// field indexes for tab focus.
const (
	fieldPath = iota
	fieldCount
	fieldMode
	fieldMax
)

// questionsReadyMsg is sent when generation finishes.
type questionsReadyMsg struct {
	Questions []quizgen.Question
	Source    string
	Settings  sess.Settings
	Err       error
}

// UploadScreen collects a document path and quiz settings, then runs
// generation asynchronously. While a generation is in flight new
// submissions are ignored.
type UploadScreen struct {
	generator  quizgen.Generator
	resultRepo store.ResultRepo

	path       components.TextInput
	count      components.TextInput
	mode       sess.Mode
	focus      int
	processing bool
	errMsg     string
}

var _ screen.Screen = (*UploadScreen)(nil)
var _ screen.KeyHintProvider = (*UploadScreen)(nil)

// New creates an UploadScreen with injected dependencies. resultRepo
// may be nil when history persistence is not wanted.
func New(generator quizgen.Generator, resultRepo store.ResultRepo) *UploadScreen {
	path := components.NewTextInput("path/to/document.txt", false, 256)
	count := components.NewTextInput("10", true, 2)
	return &UploadScreen{
		generator:  generator,
		resultRepo: resultRepo,
		path:       path,
		count:      count,
		mode:       sess.DefaultSettings().Mode,
	}
}

func (s *UploadScreen) Init() tea.Cmd {
	return s.path.Init()
}

func (s *UploadScreen) Title() string {
	return "New Quiz"
}

func (s *UploadScreen) KeyHints() []layout.KeyHint {
	if s.processing {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+H", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *UploadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToFocused(msg)
}

func (s *UploadScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.processing {
		// Generation in flight: no new uploads, no field edits.
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		s.focus = (s.focus + 1) % fieldMax
		return s, s.focusCmd()
	case "shift+tab", "up":
		s.focus = (s.focus + fieldMax - 1) % fieldMax
		return s, s.focusCmd()
	case "left", "right":
		if s.focus == fieldMode {
			s.toggleMode()
			return s, nil
		}
	case "ctrl+h":
		if s.resultRepo != nil {
			repo := s.resultRepo
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo)}
			}
		}
		return s, nil
	case "enter":
		return s.submit()
	}

	return s.forwardToFocused(msg)
}

func (s *UploadScreen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case fieldPath:
		s.path, cmd = s.path.Update(msg)
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	}
	return s, cmd
}

func (s *UploadScreen) focusCmd() tea.Cmd {
	s.path.Blur()
	s.count.Blur()
	switch s.focus {
	case fieldPath:
		return s.path.Focus()
	case fieldCount:
		return s.count.Focus()
	}
	return nil
}

func (s *UploadScreen) toggleMode() {
	if s.mode == sess.ModeEnd {
		s.mode = sess.ModeImmediate
	} else {
		s.mode = sess.ModeEnd
	}
}

// submit validates the form and kicks off generation.
func (s *UploadScreen) submit() (screen.Screen, tea.Cmd) {
	path := strings.TrimSpace(s.path.Value())
	if path == "" {
		s.errMsg = "enter a document path"
		return s, nil
	}

	count := sess.DefaultSettings().QuestionCount
	if v := strings.TrimSpace(s.count.Value()); v != "" {
		n, err := s.count.NumericValue()
		if err != nil {
			s.errMsg = "question count must be a number"
			return s, nil
		}
		count = n
	}
	if count < quizgen.MinQuestionCount || count > quizgen.MaxQuestionCount {
		s.errMsg = fmt.Sprintf("question count must be between %d and %d",
			quizgen.MinQuestionCount, quizgen.MaxQuestionCount)
		return s, nil
	}

	settings := sess.Settings{QuestionCount: count, Mode: s.mode}
	s.errMsg = ""
	s.processing = true

	generator := s.generator
	return s, func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return questionsReadyMsg{Err: fmt.Errorf("read document: %w", err)}
		}
		questions, err := generator.Generate(context.Background(), string(data), count)
		if err != nil {
			return questionsReadyMsg{Err: err}
		}
		return questionsReadyMsg{Questions: questions, Source: path, Settings: settings}
	}
}

func (s *UploadScreen) handleReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	s.processing = false

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	session := sess.New()
	if err := session.Start(msg.Questions, msg.Settings); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	repo := s.resultRepo
	source := msg.Source
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quiz.New(session, repo, source)}
	}
}

func (s *UploadScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	center(theme.Title.Render("Generate a quiz from a document"))
	b.WriteString("\n")

	label := func(idx int, text string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.focus == idx && !s.processing {
			style = theme.Selected
		}
		return style.Render(text)
	}

	center(label(fieldPath, "Document") + "  " + s.path.View())
	b.WriteString("\n")
	center(label(fieldCount, "Questions") + " " + s.count.View())
	b.WriteString("\n")

	modeStr := "show answers at the end"
	if s.mode == sess.ModeImmediate {
		modeStr = "show answers immediately"
	}
	center(label(fieldMode, "Feedback") + "  ◂ " + modeStr + " ▸")
	b.WriteString("\n\n")

	if s.processing {
		center(theme.Hint.Render("Generating questions..."))
	} else if s.errMsg != "" {
		center(theme.Incorrect.Render(s.errMsg))
	} else {
		center(theme.Hint.Render("Press Enter to start"))
	}

	return b.String()
}
