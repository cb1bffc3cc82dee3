package coach

import "context"

// StubLLM plays back scripted responses in order and records every prompt it
// receives. It backs tests; no external call is made.
type StubLLM struct {
	Responses []string
	Err       error
	Prompts   []Prompt
}

func (s *StubLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	i := len(s.Prompts) - 1
	if i >= len(s.Responses) {
		return "", nil
	}
	return s.Responses[i], nil
}
