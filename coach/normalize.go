package coach

import "strings"

const (
	// MinWords and MaxWords bound the essay length a caller may request.
	MinWords = 300
	MaxWords = 650

	// MaxQuestions caps a generated question batch.
	MaxQuestions = 3
)

// ClampWords forces a requested limit into [MinWords, MaxWords]. Zero and
// negative values take the ceiling, matching the product default.
func ClampWords(n int) int {
	if n <= 0 {
		n = MaxWords
	}
	if n < MinWords {
		return MinWords
	}
	if n > MaxWords {
		return MaxWords
	}
	return n
}

// SplitQuestions shapes raw model text into at most MaxQuestions single-line
// questions: split on newlines, trim, drop blanks. It never fails; what to do
// with an empty result is the caller's policy.
func SplitQuestions(raw string) []string {
	out := make([]string, 0, MaxQuestions)
	for _, line := range strings.Split(raw, "\n") {
		q := strings.TrimSpace(line)
		if q == "" {
			continue
		}
		out = append(out, q)
		if len(out) == MaxQuestions {
			break
		}
	}
	return out
}

// TrimEssay strips surrounding whitespace and nothing else; the draft stays
// exactly as the model wrote it.
func TrimEssay(raw string) string {
	return strings.TrimSpace(raw)
}
