package quizgen

import (
	"errors"
	"fmt"
)

// ErrInsufficientContent is returned when the trimmed document text is
// shorter than MinContentLength. It is the only precondition failure a
// caller is expected to show to the user.
var ErrInsufficientContent = errors.New("document text is too short to generate questions from")

// ErrGenerationFailed means the pipeline produced zero questions even
// after every fallback. The filler-padding guarantee makes this
// unreachable in practice, but the facade still checks for it.
var ErrGenerationFailed = errors.New("no questions could be generated from the document")

// ErrInvalidCount is wrapped by count-validation failures.
var ErrInvalidCount = errors.New("question count out of range")

// RemoteError wraps a remote backend failure. It is logged and recovered
// by falling back to the local pipeline, never surfaced to the caller.
type RemoteError struct {
	Provider string
	Err      error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote generation via %s failed: %v", e.Provider, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// validateCount checks the requested count against the allowed range.
func validateCount(count int) error {
	if count < MinQuestionCount || count > MaxQuestionCount {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidCount, count, MinQuestionCount, MaxQuestionCount)
	}
	return nil
}
