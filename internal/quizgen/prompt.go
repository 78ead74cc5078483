package quizgen

import (
	"fmt"
	"strings"
)

// promptExcerptLength caps how much document text is sent to a remote
// provider.
const promptExcerptLength = 4000

const remoteSystemPrompt = `You are an assessment writer turning extracted document text into multiple-choice questions.

Rules:
- Base every question strictly on the provided text. Do not use outside knowledge.
- Produce exactly the requested number of questions.
- Each question has exactly 4 options, one correct answer, and three plausible distractors drawn from the text's subject matter.
- "correctAnswer" is the zero-based index of the correct option.
- Include a one-sentence explanation for the correct answer.
- Label each question's difficulty as "easy", "medium", or "hard" based on how much reasoning it demands.`

// buildRemoteUserMessage assembles the user message from the document
// excerpt and the requested count.
func buildRemoteUserMessage(text string, count int) string {
	excerpt := strings.TrimSpace(text)
	if len(excerpt) > promptExcerptLength {
		excerpt = excerpt[:promptExcerptLength]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create exactly %d multiple-choice questions from the following document text.\n\n", count)
	b.WriteString("Document text:\n")
	b.WriteString(excerpt)
	return b.String()
}
