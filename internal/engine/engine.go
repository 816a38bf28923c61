package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// Outcome is the terminal state of one pick invocation.
type Outcome int

const (
	// OutcomePicked means a candidate was accepted and the model's
	// mutation was applied.
	OutcomePicked Outcome = iota

	// OutcomeAborted means the user cancelled; state is untouched.
	OutcomeAborted

	// OutcomeExhausted means no eligible candidate remained: every
	// reachable choice was declined or had zero selection probability.
	// State is untouched.
	OutcomeExhausted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePicked:
		return "picked"
	case OutcomeAborted:
		return "aborted"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is what one invocation hands back to the caller.
//
// Category is the final state: mutated when Outcome is OutcomePicked,
// and the original, untouched state otherwise. Nothing is ever
// partially applied. The caller owns persistence.
type Result struct {
	Outcome  Outcome
	Pick     string
	Token    string
	Category *config.Category
}

// Engine drives pick invocations. It holds no state across calls: each
// invocation owns its own excluded set and the injected RNG is the
// only shared dependency.
type Engine struct {
	ui     ui.UI
	rng    RNG
	tokens TokenGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithRNG substitutes the random source. Tests use a scripted source
// to assert exact index selection.
func WithRNG(rng RNG) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithTokenGenerator substitutes the pick token generator.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(e *Engine) {
		e.tokens = g
	}
}

// New creates an Engine talking to the given UI. By default it uses an
// OS-seeded RNG and UUIDv7 pick tokens.
func New(u ui.UI, opts ...Option) *Engine {
	e := &Engine{
		ui:     u,
		rng:    NewRNG(),
		tokens: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Pick resolves a category by name in the document and runs one
// invocation against it. Lookup is exact first, then NFC-canonical.
func (e *Engine) Pick(doc config.Document, category string) (Result, error) {
	cat, key, ok := doc.Lookup(category)
	if !ok {
		return Result{}, NewCategoryNotFoundError(category)
	}
	return e.PickCategory(key, cat)
}

// PickCategory runs one invocation for a single category.
//
// The loop is the offer/present state machine: select a candidate over
// the shrinking non-excluded set, present it, and either apply the
// model's mutation (accept), grow the excluded set (decline), or stop
// (abort). Select either produces a candidate outside the excluded set
// or signals exhaustion, so the loop terminates structurally.
func (e *Engine) PickCategory(name string, cat *config.Category) (Result, error) {
	if err := cat.Validate(); err != nil {
		return Result{}, NewInvalidCategoryError(name, err)
	}
	strat, ok := strategyFor(cat.Model)
	if !ok {
		// Validate covers unknown kinds; this only trips if the kind
		// set and the dispatch table fall out of sync.
		return Result{}, NewInvalidCategoryError(name, fmt.Errorf("no strategy for model %q", cat.Model))
	}

	token := e.tokens.Generate()
	slog.Debug("pick starting",
		"token", token,
		"category", name,
		"model", string(cat.Model),
		"choices", len(cat.Choices),
	)

	excluded := make(map[int]bool)
	for {
		index, err := strat.Select(cat, excluded, e.rng)
		if errors.Is(err, ErrExhausted) {
			// A raised eyebrow for the user who declined everything.
			e.ui.Info("🤨")
			slog.Info("pick exhausted",
				"token", token,
				"category", name,
				"declined", len(excluded),
			)
			return Result{Outcome: OutcomeExhausted, Token: token, Category: cat}, nil
		}
		if err != nil {
			return Result{}, fmt.Errorf("select candidate: %w", err)
		}
		if excluded[index] {
			return Result{}, fmt.Errorf("model %q offered excluded index %d", cat.Model, index)
		}

		if e.ui.TablesEnabled() {
			e.ui.ShowTable(strat.Table(cat, excluded, index))
		}

		candidate := cat.Choices[index].Name
		slog.Debug("presenting candidate",
			"token", token,
			"category", name,
			"index", index,
			"candidate", candidate,
		)

		response, err := e.ui.PromptChoice(candidate)
		if err != nil {
			return Result{}, fmt.Errorf("present candidate %q: %w", candidate, err)
		}

		switch response {
		case ui.Accept:
			strat.Apply(cat, index)
			slog.Info("pick accepted",
				"token", token,
				"category", name,
				"pick", candidate,
				"declined", len(excluded),
			)
			return Result{Outcome: OutcomePicked, Pick: candidate, Token: token, Category: cat}, nil

		case ui.Decline:
			excluded[index] = true

		case ui.Abort:
			slog.Info("pick aborted",
				"token", token,
				"category", name,
				"declined", len(excluded),
			)
			return Result{Outcome: OutcomeAborted, Token: token, Category: cat}, nil

		default:
			return Result{}, fmt.Errorf("unknown response %d from ui", response)
		}
	}
}
