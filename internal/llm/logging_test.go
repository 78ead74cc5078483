package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/quizforge/quizforge/internal/store"
)

type fakeEventRepo struct {
	events []store.LLMRequestEvent
	err    error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) RecentLLMRequests(_ context.Context, _ int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 50},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("success request logged as failure")
	}
	if ev.Purpose != "quiz-gen" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if ev.InputTokens != 100 || ev.OutputTokens != 50 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected an error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("failed request logged as success")
	}
	if ev.ErrorMessage == "" {
		t.Error("failure event has no error message")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose without context label = %q", ev.Purpose)
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("logging failure propagated: %v", err)
	}
	if resp == nil {
		t.Fatal("response lost")
	}
}
