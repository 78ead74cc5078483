package quizgen

// Difficulty labels how demanding a question is expected to be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known difficulty labels.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is a single multiple-choice item produced by a generation run.
type Question struct {
	// ID is unique within one generation run, starting at 1.
	ID int `json:"id"`

	// Text is the question prompt shown to the learner.
	Text string `json:"question"`

	// Options holds exactly 4 answer options.
	Options []string `json:"options"`

	// CorrectIndex is the index into Options of the correct answer.
	// The pipeline always places the correct option first, so this is 0
	// for every locally synthesized question. Consumers that want the
	// answer position randomized must shuffle at the display boundary
	// and remap the index themselves.
	CorrectIndex int `json:"correctAnswer"`

	// Explanation is a short justification shown after answering.
	Explanation string `json:"explanation"`

	// Difficulty is the question's difficulty label.
	Difficulty Difficulty `json:"difficulty"`
}

// Chunk is a bounded window of consecutive sentences from the source text.
// Start and End are byte offsets into the original document.
type Chunk struct {
	Content string
	Start   int
	End     int
}

// AnalyzedChunk carries the features extracted from one chunk.
// Analysis is pure: the same chunk always yields the same features.
type AnalyzedChunk struct {
	Content    string
	KeyTerms   []string // capitalized phrases, at most 5, first-seen order
	Concepts   []string // meta-vocabulary hits plus capitalized phrases, at most 3
	Facts      []string // stative sentences, at most 3, document order
	Difficulty Difficulty
}

const (
	// MinContentLength is the minimum trimmed document length accepted
	// by a generation run.
	MinContentLength = 100

	// MinQuestionCount and MaxQuestionCount bound the requested count.
	MinQuestionCount = 5
	MaxQuestionCount = 30
)
