package session

import "github.com/quizforge/quizforge/internal/quizgen"

// Summary aggregates a finished session for the results view.
type Summary struct {
	Total        int
	Correct      int
	ByDifficulty map[quizgen.Difficulty]DifficultyResult
}

// DifficultyResult is the per-difficulty score breakdown.
type DifficultyResult struct {
	Total   int
	Correct int
}

// Percent returns the overall score as a percentage.
func (s Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Correct * 100 / s.Total
}

// Summarize computes the results breakdown from the session's questions
// and recorded answers. Unanswered questions count as wrong.
func (s *Session) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Total:        len(s.questions),
		ByDifficulty: make(map[quizgen.Difficulty]DifficultyResult),
	}

	for i, q := range s.questions {
		dr := sum.ByDifficulty[q.Difficulty]
		dr.Total++
		if chosen, ok := s.answers[i]; ok && chosen == q.CorrectIndex {
			sum.Correct++
			dr.Correct++
		}
		sum.ByDifficulty[q.Difficulty] = dr
	}

	return sum
}
