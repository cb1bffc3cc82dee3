package coach

import (
	"context"
	"math/rand"
	"strings"
)

// Stage names accepted on a request.
const (
	StageStart    = "start"
	StageFollowup = "followup"
	StageDraft    = "draft"
	StageEssay    = "essay" // legacy alias for draft

	// Result stage markers returned to the caller.
	StageQuestions = "questions"
	StageDone      = "done"
)

// EmptyPolicy names how a stage treats a completion with no usable text.
type EmptyPolicy string

const (
	// EmptyLenient degrades softly: fixed defaults for questions, an empty
	// string for drafts.
	EmptyLenient EmptyPolicy = "lenient"

	// EmptyStrict surfaces ErrEmptyCompletion instead of degrading.
	EmptyStrict EmptyPolicy = "strict"
)

// Options tune an Agent. Zero values fall back to the shipped defaults.
type Options struct {
	QuestionTemperature float64
	EssayTemperature    float64
	Empty               EmptyPolicy
	Style               StyleRules

	// OpeningPool serves the start stage without a model call when no
	// completion client is configured, and backs the lenient fallback when a
	// question generation comes back empty.
	OpeningPool []string

	// PickIndex selects from OpeningPool; injected so tests can pin the draw.
	PickIndex func(n int) int
}

// Agent runs one stage per call. It holds no conversation state; the caller
// replays the accumulated answers on every request.
type Agent struct {
	llm  LLMClient
	opts Options
}

// NewAgent builds an agent. llm may be nil: stages that need a model then fail
// with ErrMissingCredential, though a non-empty opening pool still serves the
// start stage.
func NewAgent(llm LLMClient, opts Options) *Agent {
	if opts.QuestionTemperature == 0 {
		opts.QuestionTemperature = 0.7
	}
	if opts.EssayTemperature == 0 {
		opts.EssayTemperature = 0.7
	}
	switch opts.Empty {
	case EmptyStrict, EmptyLenient:
	default:
		opts.Empty = EmptyLenient
	}
	if opts.Style.Persona == "" {
		opts.Style = DefaultStyle()
	}
	if opts.PickIndex == nil {
		opts.PickIndex = rand.Intn
	}
	return &Agent{llm: llm, opts: opts}
}

// Run dispatches a request to its stage handler. Unknown or missing stages are
// rejected before any model call.
func (a *Agent) Run(ctx context.Context, req Request) (Result, error) {
	switch req.Stage {
	case StageStart:
		return a.start(ctx)
	case StageFollowup:
		return a.followup(ctx, NormalizeAnswers(req.Answers))
	case StageDraft, StageEssay:
		return a.draft(ctx, req)
	default:
		return Result{}, &ValidationError{Msg: "Missing or invalid 'stage'."}
	}
}

func (a *Agent) start(ctx context.Context) (Result, error) {
	if a.llm == nil {
		if len(a.opts.OpeningPool) == 0 {
			return Result{}, ErrMissingCredential
		}
		return Result{Stage: StageQuestions, Questions: []string{a.pickOpening()}}, nil
	}

	raw, err := a.llm.Complete(ctx, BuildQuestionsPrompt(a.opts.QuestionTemperature))
	if err != nil {
		return Result{}, err
	}
	questions := SplitQuestions(raw)
	if len(questions) == 0 {
		if a.opts.Empty == EmptyStrict {
			return Result{}, ErrEmptyCompletion
		}
		if len(a.opts.OpeningPool) > 0 {
			questions = []string{a.pickOpening()}
		}
	}
	return Result{Stage: StageQuestions, Questions: questions}, nil
}

func (a *Agent) followup(ctx context.Context, answers []Answer) (Result, error) {
	if a.llm == nil {
		return Result{}, ErrMissingCredential
	}
	raw, err := a.llm.Complete(ctx, BuildFollowupPrompt(answers, a.opts.QuestionTemperature))
	if err != nil {
		return Result{}, err
	}
	var q string
	if lines := SplitQuestions(raw); len(lines) > 0 {
		q = lines[0]
	}
	if q == "" {
		if a.opts.Empty == EmptyStrict {
			return Result{}, ErrEmptyCompletion
		}
		q = DefaultFollowupQuestion
	}
	return Result{Question: q}, nil
}

func (a *Agent) draft(ctx context.Context, req Request) (Result, error) {
	answers := NormalizeAnswers(req.Answers)
	if len(answers) == 0 {
		return Result{}, &ValidationError{Msg: "Provide answers for stage 'draft'."}
	}
	if a.llm == nil {
		return Result{}, ErrMissingCredential
	}

	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = DefaultTone
	}
	limit := ClampWords(req.MaxWords)

	raw, err := a.llm.Complete(ctx, BuildEssayPrompt(answers, tone, limit, a.opts.Style, a.opts.EssayTemperature))
	if err != nil {
		return Result{}, err
	}
	essay := TrimEssay(raw)
	if essay == "" && a.opts.Empty == EmptyStrict {
		return Result{}, ErrEmptyCompletion
	}
	return Result{Stage: StageDone, Essay: essay}, nil
}

func (a *Agent) pickOpening() string {
	return a.opts.OpeningPool[a.opts.PickIndex(len(a.opts.OpeningPool))]
}
