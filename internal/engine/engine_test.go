package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/testutil"
	"github.com/roach88/pick/internal/ui"
)

func newTestEngine(u ui.UI, rng RNG) *Engine {
	if rng == nil {
		rng = &testutil.ScriptRNG{}
	}
	return New(u,
		WithRNG(rng),
		WithTokenGenerator(FixedGenerator{Token: "tok-1"}),
	)
}

func TestEngine_AcceptFirstOffer(t *testing.T) {
	cat := namesCategory(config.KindEven, "a", "b", "c")
	script := ui.NewScript(ui.Accept)

	res, err := newTestEngine(script, nil).PickCategory("test", cat)
	require.NoError(t, err)

	assert.Equal(t, OutcomePicked, res.Outcome)
	assert.Equal(t, "a", res.Pick) // zero draw lands on the first choice
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, []string{"a"}, script.Prompted)
}

func TestEngine_DeclineExcludesForTheRun(t *testing.T) {
	// Declining a and b leaves only c; c is offered and accepted.
	cat := namesCategory(config.KindEven, "a", "b", "c")
	before := cat.Clone()
	script := ui.NewScript(ui.Decline, ui.Decline, ui.Accept)

	res, err := newTestEngine(script, nil).PickCategory("test", cat)
	require.NoError(t, err)

	assert.Equal(t, OutcomePicked, res.Outcome)
	assert.Equal(t, "c", res.Pick)
	assert.Equal(t, []string{"a", "b", "c"}, script.Prompted)
	assert.Equal(t, before, cat, "the even model carries no state to mutate")
}

func TestEngine_DeclineNeverReoffers(t *testing.T) {
	cat := namesCategory(config.KindEven, "a", "b", "c", "d", "e")
	script := ui.NewScript(ui.Decline, ui.Decline, ui.Decline, ui.Decline, ui.Accept)
	rng := rand.New(rand.NewPCG(42, 43))

	res, err := newTestEngine(script, rng).PickCategory("test", cat)
	require.NoError(t, err)
	assert.Equal(t, OutcomePicked, res.Outcome)

	seen := map[string]bool{}
	for _, name := range script.Prompted {
		assert.False(t, seen[name], "%q offered twice", name)
		seen[name] = true
	}
}

func TestEngine_DeclineEverythingExhausts(t *testing.T) {
	cat := namesCategory(config.KindEven, "a", "b")
	script := ui.NewScript(ui.Decline, ui.Decline)

	res, err := newTestEngine(script, nil).PickCategory("test", cat)
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Empty(t, res.Pick)
	assert.Equal(t, []string{"🤨"}, script.Messages)
}

func TestEngine_ZeroProbabilityExhaustsImmediately(t *testing.T) {
	cat := &config.Category{
		Model:   config.KindLottery,
		Choices: []config.Choice{{Name: "a", Tickets: 0}, {Name: "b", Tickets: 0}},
	}
	script := ui.NewScript()

	res, err := newTestEngine(script, nil).PickCategory("test", cat)
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Empty(t, script.Prompted, "nothing eligible, nothing offered")
}

func TestEngine_AbortLeavesStateUntouched(t *testing.T) {
	cat := &config.Category{
		Model: config.KindLottery,
		Choices: []config.Choice{
			{Name: "a", Tickets: 2, Weight: 1},
			{Name: "b", Tickets: 5, Weight: 1},
		},
	}
	before := cat.Clone()
	script := ui.NewScript(ui.Decline, ui.Abort)

	res, err := newTestEngine(script, nil).PickCategory("test", cat)
	require.NoError(t, err)

	assert.Equal(t, OutcomeAborted, res.Outcome)
	assert.Empty(t, res.Pick)
	assert.Equal(t, before, cat, "abort must not mutate the category")
}

func TestEngine_ExhaustedLeavesStateUntouched(t *testing.T) {
	cat := namesCategory(config.KindGaussian, "a", "b")
	before := cat.Clone()
	script := ui.NewScript(ui.Decline, ui.Decline)
	rng := rand.New(rand.NewPCG(9, 9))

	res, err := newTestEngine(script, rng).PickCategory("test", cat)
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, before, cat)
}

func TestEngine_AcceptAppliesExactlyOnce(t *testing.T) {
	cat := &config.Category{
		Model: config.KindInventory,
		Choices: []config.Choice{
			{Name: "soup", Tickets: 3},
		},
	}
	script := ui.NewScript(ui.Accept)

	res, err := newTestEngine(script, nil).PickCategory("test", cat)
	require.NoError(t, err)

	assert.Equal(t, OutcomePicked, res.Outcome)
	assert.Equal(t, int64(2), cat.Choices[0].Tickets)
}

func TestEngine_CategoryNotFound(t *testing.T) {
	doc := config.Document{}
	script := ui.NewScript()

	_, err := newTestEngine(script, nil).Pick(doc, "missing")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeCategoryNotFound, ce.Code)
	assert.Equal(t, "missing", ce.Category)
}

func TestEngine_PickResolvesCanonicalName(t *testing.T) {
	doc := config.Document{
		"cafe\u0301": namesCategory(config.KindEven, "x"), // decomposed e + combining acute
	}
	script := ui.NewScript(ui.Accept)

	res, err := newTestEngine(script, nil).Pick(doc, "caf\u00e9") // precomposed
	require.NoError(t, err)
	assert.Equal(t, OutcomePicked, res.Outcome)
	assert.Equal(t, "x", res.Pick)
}

func TestEngine_InvalidCategory(t *testing.T) {
	cat := &config.Category{Model: config.KindEven}
	script := ui.NewScript()

	_, err := newTestEngine(script, nil).PickCategory("empty", cat)
	require.Error(t, err)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeInvalidCategory, ce.Code)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Empty(t, script.Prompted, "validation failure happens before any offer")
}

func TestEngine_TablesOnlyWhenEnabled(t *testing.T) {
	cat := namesCategory(config.KindEven, "a", "b")

	quiet := ui.NewScript(ui.Accept)
	_, err := newTestEngine(quiet, nil).PickCategory("test", cat)
	require.NoError(t, err)
	assert.Empty(t, quiet.Tables)

	verbose := ui.NewScript(ui.Accept)
	verbose.ShowTables = true
	_, err = newTestEngine(verbose, nil).PickCategory("test", cat)
	require.NoError(t, err)
	require.Len(t, verbose.Tables, 1)
	assert.Equal(t, []string{"Name", "Weight", "Chance"}, verbose.Tables[0].Header)
}

func TestEngine_LRUEndToEnd(t *testing.T) {
	cat := namesCategory(config.KindLRU, "a", "b", "c")
	script := ui.NewScript(ui.Accept)

	res, err := newTestEngine(script, nil).PickCategory("queue", cat)
	require.NoError(t, err)

	assert.Equal(t, "a", res.Pick)
	assert.Equal(t, []string{"b", "c", "a"}, choiceNames(cat))
}

func TestEngine_LRUDeclineOffersSecond(t *testing.T) {
	cat := namesCategory(config.KindLRU, "a", "b", "c")
	script := ui.NewScript(ui.Decline, ui.Accept)

	res, err := newTestEngine(script, nil).PickCategory("queue", cat)
	require.NoError(t, err)

	assert.Equal(t, "b", res.Pick)
	assert.Equal(t, []string{"a", "c", "b"}, choiceNames(cat))
}

func TestEngine_LotteryEndToEnd(t *testing.T) {
	cat := &config.Category{
		Model: config.KindLottery,
		Choices: []config.Choice{
			{Name: "a", Tickets: 1, Weight: 1},
			{Name: "b", Tickets: 1, Weight: 1},
		},
	}
	script := ui.NewScript(ui.Accept)

	res, err := newTestEngine(script, nil).PickCategory("chores", cat)
	require.NoError(t, err)

	assert.Equal(t, "a", res.Pick)
	assert.Equal(t, int64(0), cat.Choices[0].Tickets)
	assert.Equal(t, int64(2), cat.Choices[1].Tickets)
}

func TestEngine_GaussianTinyScalingFactorCompletes(t *testing.T) {
	// Every draw lands far out of range, so selection falls back to the
	// deterministic scan; the invocation completes instead of panicking.
	cat := namesCategory(config.KindGaussian, "a", "b", "c")
	cat.StddevScalingFactor = 1e-300
	script := ui.NewScript(ui.Accept)
	rng := &testutil.ScriptRNG{Normals: []float64{1.0}}

	res, err := newTestEngine(script, rng).PickCategory("g", cat)
	require.NoError(t, err)
	assert.Equal(t, OutcomePicked, res.Outcome)
	assert.Equal(t, "a", res.Pick)
}

func TestEngine_GaussianAcceptReordersOnly(t *testing.T) {
	cat := namesCategory(config.KindGaussian, "a", "b", "c")
	script := ui.NewScript(ui.Accept)
	rng := &testutil.ScriptRNG{Normals: []float64{1.2}} // index 1

	res, err := newTestEngine(script, rng).PickCategory("g", cat)
	require.NoError(t, err)

	assert.Equal(t, "b", res.Pick)
	assert.Equal(t, []string{"a", "c", "b"}, choiceNames(cat))
	assert.Equal(t, config.DefaultStddevScalingFactor, cat.StddevScalingFactor)
}

func TestEngine_DefaultDependencies(t *testing.T) {
	// Without options the engine runs on a real RNG and UUIDv7 tokens.
	cat := namesCategory(config.KindEven, "only")
	script := ui.NewScript(ui.Accept)

	res, err := New(script).PickCategory("test", cat)
	require.NoError(t, err)
	assert.Equal(t, OutcomePicked, res.Outcome)
	assert.NotEmpty(t, res.Token)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "picked", OutcomePicked.String())
	assert.Equal(t, "aborted", OutcomeAborted.String())
	assert.Equal(t, "exhausted", OutcomeExhausted.String())
}
