package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEvent captures one remote generation call.
type LLMRequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored event row.
type LLMRequestRecord struct {
	ID        int
	CreatedAt time.Time
	LLMRequestEvent
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEvent) error

	// RecentLLMRequests returns the most recent events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}

// QuizResult is one finished quiz session.
type QuizResult struct {
	ID            int
	SessionID     string
	Source        string
	QuestionCount int
	CorrectCount  int
	Mode          string
	Duration      time.Duration
	FinishedAt    time.Time
}

// ResultRepo stores and lists finished quiz sessions.
type ResultRepo interface {
	// Append records a finished session.
	Append(ctx context.Context, r QuizResult) error

	// Recent returns the most recent results, newest first.
	Recent(ctx context.Context, limit int) ([]QuizResult, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_request_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestRecord
	for rows.Next() {
		var rec LLMRequestRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &rec.Success, &rec.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm request event: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, res QuizResult) error {
	finishedAt := res.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results
			(session_id, source, question_count, correct_count, mode, duration_ms, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.SessionID, res.Source, res.QuestionCount, res.CorrectCount,
		res.Mode, res.Duration.Milliseconds(), finishedAt,
	)
	if err != nil {
		return fmt.Errorf("append quiz result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]QuizResult, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, source, question_count, correct_count, mode, duration_ms, finished_at
		 FROM quiz_results ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var out []QuizResult
	for rows.Next() {
		var res QuizResult
		var durationMs int64
		if err := rows.Scan(&res.ID, &res.SessionID, &res.Source, &res.QuestionCount,
			&res.CorrectCount, &res.Mode, &durationMs, &res.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		res.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, res)
	}
	return out, rows.Err()
}
