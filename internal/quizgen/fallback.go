package quizgen

// simpleGenerate is the last-resort generator used when the chunked
// pipeline yields nothing: one question per available sentence with the
// sentence itself as the correct option, padded to the exact count with
// a fixed filler. No randomness: the distractors are the generic pool
// in its fixed order.
func simpleGenerate(text string, count int) []Question {
	generic := distractorPools["generic"]

	var items []Question
	for _, s := range splitSentences(text) {
		if len(items) == count {
			break
		}
		items = append(items, Question{
			Text:         "What does the document state about this topic?",
			Options:      append([]string{truncate(s.text, maxOptionLength)}, generic...),
			CorrectIndex: 0,
			Explanation:  "This sentence is taken from the document.",
			Difficulty:   DifficultyMedium,
		})
	}

	for len(items) < count {
		items = append(items, Question{
			Text:         "Based on the document content, what is a key point mentioned?",
			Options:      append([]string{"A central topic developed across the document"}, generic...),
			CorrectIndex: 0,
			Explanation:  "The document develops this topic; the remaining options deny its content.",
			Difficulty:   DifficultyEasy,
		})
	}

	for i := range items {
		items[i].ID = i + 1
	}
	return items
}
