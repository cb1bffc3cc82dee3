package coach

// StyleRules captures the product voice as data so the wording can change
// without touching stage logic.
type StyleRules struct {
	// Persona is the opening line of the essay system message.
	Persona string
	// Voice holds the global constraints applied to every generation.
	Voice []string
	// BannedPhrases are repeated verbatim in the essay prompt as a denylist.
	BannedPhrases []string
}

// DefaultStyle is the shipped voice: concrete detail, quiet endings, none of
// the usual workshop phrasing.
func DefaultStyle() StyleRules {
	return StyleRules{
		Persona: "You are a college essay coach.",
		Voice: []string{
			"Write one cohesive essay only.",
			"Use concrete details directly from the student's answers.",
			"Avoid clichés, stock morals, and template phrasing.",
			"No em dashes. First person. Mix short and medium sentences.",
			"End with a quiet, earned beat. No slogans.",
		},
		BannedPhrases: []string{
			"tapestry", "looking back", "taught me",
			"in the end", "ever since", "I learned that",
		},
	}
}

const (
	// DefaultTone is used when the caller sends none.
	DefaultTone = "natural, specific, reflective"

	// DefaultFollowupQuestion is the soft fallback when a followup
	// generation comes back empty.
	DefaultFollowupQuestion = "What small detail from that moment do you still remember most clearly?"
)
