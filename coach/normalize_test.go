package coach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampWords_Bounds(t *testing.T) {
	assert.Equal(t, 300, ClampWords(10))
	assert.Equal(t, 650, ClampWords(10000))
	assert.Equal(t, 500, ClampWords(500))
	assert.Equal(t, 300, ClampWords(300))
	assert.Equal(t, 650, ClampWords(650))
}

func TestClampWords_ZeroTakesCeiling(t *testing.T) {
	assert.Equal(t, 650, ClampWords(0))
	assert.Equal(t, 650, ClampWords(-5))
}

func TestSplitQuestions_TrimsAndCaps(t *testing.T) {
	got := SplitQuestions("  Q1?  \n\nQ2?\n   \nQ3?\nQ4?\n")
	assert.Equal(t, []string{"Q1?", "Q2?", "Q3?"}, got)
}

func TestSplitQuestions_EmptyInput(t *testing.T) {
	assert.Empty(t, SplitQuestions(""))
	assert.Empty(t, SplitQuestions("   \n \n\t\n"))
}

func TestSplitQuestions_OutputIsBoundedAndNonBlank(t *testing.T) {
	inputs := []string{
		"one question only",
		strings.Repeat("line\n", 50),
		"\n\n  padded  \n\n",
	}
	for _, in := range inputs {
		got := SplitQuestions(in)
		assert.LessOrEqual(t, len(got), MaxQuestions)
		for _, q := range got {
			assert.NotEmpty(t, strings.TrimSpace(q))
			assert.Equal(t, q, strings.TrimSpace(q))
			assert.NotContains(t, q, "\n")
		}
	}
}

func TestTrimEssay(t *testing.T) {
	assert.Equal(t, "An essay.", TrimEssay("  An essay.  "))
	assert.Equal(t, "", TrimEssay("   \n  "))
	// interior whitespace is the model's business
	assert.Equal(t, "a\n\nb", TrimEssay("\na\n\nb\n"))
}
