package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/engine"
	"github.com/roach88/pick/internal/testutil"
	"github.com/roach88/pick/internal/ui"
)

// Result captures everything a scenario run produced.
type Result struct {
	// Outcome, Pick and Token mirror the engine result.
	Outcome engine.Outcome
	Pick    string
	Token   string

	// Prompted lists the candidates offered, in order.
	Prompted []string

	// Messages lists the informational messages shown.
	Messages []string

	// FinalConfig is the document serialized after the run. On an
	// accepted pick it carries the model's mutation; otherwise it
	// round-trips the input.
	FinalConfig []byte
}

// Run executes a scenario against the real engine with scripted inputs.
//
// Engine logs are discarded; the scenario's recorded interactions are
// the observable output.
func Run(s *Scenario) (*Result, error) {
	doc, err := config.Parse([]byte(s.Config))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	responses, err := s.responses()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	script := ui.NewScript(responses...)

	token := s.Token
	if token == "" {
		token = DefaultToken
	}

	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer slog.SetDefault(prev)

	eng := engine.New(script,
		engine.WithRNG(&testutil.ScriptRNG{Uniforms: s.Uniforms, Normals: s.Normals}),
		engine.WithTokenGenerator(engine.FixedGenerator{Token: token}),
	)

	res, err := eng.Pick(doc, s.Category)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	final, err := config.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return &Result{
		Outcome:     res.Outcome,
		Pick:        res.Pick,
		Token:       res.Token,
		Prompted:    script.Prompted,
		Messages:    script.Messages,
		FinalConfig: final,
	}, nil
}
