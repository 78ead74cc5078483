package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"llm_request_events", "quiz_results"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestOpen_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	s2.Close()
}

func TestEventRepo_AppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEvent{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "quiz-gen",
		InputTokens:  1200,
		OutputTokens: 800,
		LatencyMs:    450,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	var count int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM llm_request_events`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("event count = %d, want 1", count)
	}
}

func TestEventRepo_RecentLLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEvent{
			Provider: "mock",
			Model:    "mock",
			Purpose:  "quiz-gen",
			Success:  i != 1,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("RecentLLMRequests: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID <= got[1].ID {
		t.Errorf("records not newest first: %d then %d", got[0].ID, got[1].ID)
	}
}

func TestResultRepo_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ResultRepo()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, QuizResult{
			SessionID:     "session-" + string(rune('a'+i)),
			Source:        "notes.txt",
			QuestionCount: 10,
			CorrectCount:  7 + i,
			Mode:          "end",
			Duration:      90 * time.Second,
			FinishedAt:    base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	got, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d results, want 2", len(got))
	}
	if got[0].SessionID != "session-c" || got[1].SessionID != "session-b" {
		t.Errorf("results not newest first: %s, %s", got[0].SessionID, got[1].SessionID)
	}
	if got[0].CorrectCount != 9 || got[0].QuestionCount != 10 {
		t.Errorf("score round trip lost data: %d/%d", got[0].CorrectCount, got[0].QuestionCount)
	}
	if got[0].Duration != 90*time.Second {
		t.Errorf("duration round trip = %s", got[0].Duration)
	}
}

func TestResultRepo_RecentDefaultsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ResultRepo()

	for i := 0; i < 12; i++ {
		if err := repo.Append(ctx, QuizResult{SessionID: "s", Source: "doc", QuestionCount: 5, CorrectCount: 5, Mode: "end"}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("default limit returned %d results, want 10", len(got))
	}
}

func TestResultRepo_RecentEmpty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.ResultRepo().Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty store returned %d results", len(got))
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("QUIZFORGE_DB", path)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
}

func TestDefaultDBPath_XDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("QUIZFORGE_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dataHome, "quizforge", "quizforge.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
