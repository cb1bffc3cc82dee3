package coach

import (
	"encoding/json"
	"strings"
)

// Answer is one question/answer pair from the caller. The wire shape is a
// union: either a bare string or an object with q/a (long form question/answer
// also accepted). Both decode into the same record.
type Answer struct {
	Question string
	Text     string
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Question = ""
		a.Text = s
		return nil
	}
	var obj struct {
		Q        string `json:"q"`
		A        string `json:"a"`
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Question = obj.Q
	if a.Question == "" {
		a.Question = obj.Question
	}
	a.Text = obj.A
	if a.Text == "" {
		a.Text = obj.Answer
	}
	return nil
}

// NormalizeAnswers trims each pair and drops entries whose answer text is
// empty. The rest of the pipeline only ever sees the canonical form.
func NormalizeAnswers(in []Answer) []Answer {
	out := make([]Answer, 0, len(in))
	for _, a := range in {
		a.Text = strings.TrimSpace(a.Text)
		if a.Text == "" {
			continue
		}
		a.Question = strings.TrimSpace(a.Question)
		out = append(out, a)
	}
	return out
}

// Request is one stage submission. Session state lives with the caller; every
// request carries the full accumulated context.
type Request struct {
	Stage    string   `json:"stage"`
	Answers  []Answer `json:"answers"`
	Tone     string   `json:"tone"`
	MaxWords int      `json:"maxWords"`
}

// Result is the typed outcome of a stage run. Exactly one of Questions,
// Question, or Essay is meaningful, keyed by Stage.
type Result struct {
	Stage     string
	Questions []string
	Question  string
	Essay     string
}
