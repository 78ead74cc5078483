package quizgen

import "strings"

const (
	// minSentenceLength filters out fragments left over from headings,
	// page numbers, and broken extraction.
	minSentenceLength = 20

	// chunkWindow and chunkStride define the sliding window over
	// sentences. The stride is smaller than the window so adjacent
	// chunks overlap and a single sentence can feed several candidate
	// questions.
	chunkWindow = 4
	chunkStride = 2

	// minChunkLength drops joined windows too thin to analyze.
	minChunkLength = 80
)

// sentence is one sentence with its byte offsets in the source text.
type sentence struct {
	text  string
	start int
	end   int
}

// splitSentences cuts text at sentence-terminating punctuation and
// discards fragments shorter than minSentenceLength. Offsets refer to
// the trimmed sentence within the original text.
func splitSentences(text string) []sentence {
	var out []sentence
	start := 0

	flush := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if len(trimmed) >= minSentenceLength {
			lead := len(raw) - len(strings.TrimLeft(raw, " \t\r\n"))
			out = append(out, sentence{
				text:  trimmed,
				start: start + lead,
				end:   start + lead + len(trimmed),
			})
		}
		start = end
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			flush(i + 1)
		}
	}
	if start < len(text) {
		flush(len(text))
	}

	return out
}

// ChunkText splits text into overlapping sentence-aligned chunks.
// A document that yields no usable sentences produces an empty slice,
// never an error; the facade handles the empty case via its fallback.
func ChunkText(text string) []Chunk {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []Chunk
	for i := 0; i < len(sentences); i += chunkStride {
		end := i + chunkWindow
		if end > len(sentences) {
			end = len(sentences)
		}
		window := sentences[i:end]

		parts := make([]string, len(window))
		for j, s := range window {
			parts[j] = s.text
		}
		joined := strings.Join(parts, " ")

		if len(joined) >= minChunkLength {
			chunks = append(chunks, Chunk{
				Content: joined,
				Start:   window[0].start,
				End:     window[len(window)-1].end,
			})
		}

		if end == len(sentences) {
			break
		}
	}

	return chunks
}
