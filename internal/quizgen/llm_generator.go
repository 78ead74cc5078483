package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/quizforge/quizforge/internal/llm"
)

// remoteMaxTokens bounds the remote response; 30 questions of ~80 words
// fit comfortably.
const remoteMaxTokens = 4096

// RemoteGenerator asks a hosted model for the quiz and falls back to the
// local pipeline on any failure: network, timeout, malformed JSON, wrong
// count, or invalid item shape. Remote trouble is logged, never
// surfaced; the caller always gets either questions or a local-pipeline
// error.
type RemoteGenerator struct {
	provider llm.Provider
	local    *LocalGenerator
	timeout  time.Duration
}

// NewRemote creates a RemoteGenerator wrapping the given provider and
// local fallback. A zero timeout defaults to 30s.
func NewRemote(provider llm.Provider, local *LocalGenerator, timeout time.Duration) *RemoteGenerator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RemoteGenerator{provider: provider, local: local, timeout: timeout}
}

// remoteQuiz mirrors QuizSchema.
type remoteQuiz struct {
	Questions []remoteQuestion `json:"questions"`
}

type remoteQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

// Generate implements Generator.
func (g *RemoteGenerator) Generate(ctx context.Context, text string, count int) ([]Question, error) {
	// Precondition failures surface directly; the remote path only
	// covers generation itself.
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(text)) < MinContentLength {
		return nil, ErrInsufficientContent
	}

	questions, err := g.remote(ctx, text, count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using local pipeline\n",
			&RemoteError{Provider: g.provider.ModelID(), Err: err})
		return g.local.Generate(ctx, text, count)
	}
	return questions, nil
}

func (g *RemoteGenerator) remote(ctx context.Context, text string, count int) ([]Question, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: remoteSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRemoteUserMessage(text, count)},
		},
		Schema:      QuizSchema,
		MaxTokens:   remoteMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	var raw remoteQuiz
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(raw.Questions) != count {
		return nil, fmt.Errorf("expected %d questions, got %d", count, len(raw.Questions))
	}

	questions := make([]Question, len(raw.Questions))
	for i, rq := range raw.Questions {
		q, err := rq.toQuestion(i + 1)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions[i] = q
	}
	return questions, nil
}

func (rq remoteQuestion) toQuestion(id int) (Question, error) {
	if strings.TrimSpace(rq.Question) == "" {
		return Question{}, fmt.Errorf("empty question text")
	}
	if len(rq.Options) != 4 {
		return Question{}, fmt.Errorf("expected 4 options, got %d", len(rq.Options))
	}
	if rq.CorrectAnswer < 0 || rq.CorrectAnswer > 3 {
		return Question{}, fmt.Errorf("correctAnswer %d out of range", rq.CorrectAnswer)
	}
	difficulty := Difficulty(rq.Difficulty)
	if !difficulty.Valid() {
		return Question{}, fmt.Errorf("unknown difficulty %q", rq.Difficulty)
	}
	return Question{
		ID:           id,
		Text:         rq.Question,
		Options:      rq.Options,
		CorrectIndex: rq.CorrectAnswer,
		Explanation:  rq.Explanation,
		Difficulty:   difficulty,
	}, nil
}
