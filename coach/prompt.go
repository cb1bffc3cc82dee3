package coach

import (
	"fmt"
	"strings"
)

// BuildQuestionsPrompt asks for the opening batch of follow-up questions. A
// single user message, no system role.
func BuildQuestionsPrompt(temp float64) Prompt {
	var sb strings.Builder
	sb.WriteString("Ask three warm, specific follow-up questions that help personalize a college essay. ")
	sb.WriteString("No em dashes. No multi-part questions. Put each question on its own line. ")
	sb.WriteString("Aim at concrete detail like place, time, tiny actions, people, sounds, or objects.")
	return Prompt{User: sb.String(), Temperature: temp}
}

// BuildFollowupPrompt asks for exactly one more question given everything the
// student has said so far.
func BuildFollowupPrompt(answers []Answer, temp float64) Prompt {
	var sb strings.Builder
	sb.WriteString("The student has answered so far:\n")
	for i, a := range answers {
		if a.Question != "" {
			sb.WriteString(fmt.Sprintf("%d. Q: %s\n   A: %s\n", i+1, a.Question, a.Text))
			continue
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, a.Text))
	}
	sb.WriteString("\nAsk one warm follow-up question that digs into a sensory or biographical detail ")
	sb.WriteString("the student has not given yet. No em dashes. Not multi-part. Return only the question.")

	return Prompt{
		System:      "You are a college essay coach drawing out concrete detail.",
		User:        sb.String(),
		Temperature: temp,
	}
}

// BuildEssayPrompt assembles the draft request: a system message carrying the
// persona and voice rules, then a user message with the enumerated answers and
// the task list. The word limit and tone are interpolated verbatim.
func BuildEssayPrompt(answers []Answer, tone string, limit int, style StyleRules, temp float64) Prompt {
	system := style.Persona
	if len(style.Voice) > 0 {
		system += " " + strings.Join(style.Voice, " ")
	}

	var sb strings.Builder
	sb.WriteString("Answers:\n")
	for i, a := range answers {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, a.Text))
	}
	sb.WriteString("\nTask:\n")
	sb.WriteString("1) Extract 10 to 20 specific facts in your head (places, people, actions, sounds, textures, small numbers).\n")
	sb.WriteString(fmt.Sprintf("2) Write a %d-word max essay that weaves those facts into a single scene or arc.\n", limit))
	sb.WriteString(fmt.Sprintf("3) Tone: %s.\n", tone))
	sb.WriteString(fmt.Sprintf("4) Do not use these phrases: %s.\n", strings.Join(style.BannedPhrases, ", ")))
	sb.WriteString("5) Use first person, natural rhythm, short and medium sentences.\n")
	sb.WriteString("6) No list format, no headings, no bullets.\n")
	sb.WriteString("7) Return only the essay text.")

	return Prompt{System: system, User: sb.String(), Temperature: temp}
}
