package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EvenNames(t *testing.T) {
	doc, err := Parse([]byte(`
lunch:
  model: even
  choices:
    - tacos
    - ramen
    - pho
`))
	require.NoError(t, err)

	cat, _, ok := doc.Lookup("lunch")
	require.True(t, ok)
	assert.Equal(t, KindEven, cat.Model)
	require.Len(t, cat.Choices, 3)
	assert.Equal(t, "tacos", cat.Choices[0].Name)
	assert.Equal(t, "pho", cat.Choices[2].Name)
}

func TestParse_WeightedDefaults(t *testing.T) {
	doc, err := Parse([]byte(`
albums:
  model: weighted
  choices:
    - name: blue
      weight: 4
    - name: kindofblue
    - name: silent
      weight: 0
`))
	require.NoError(t, err)

	cat := doc["albums"]
	require.NotNil(t, cat)
	assert.Equal(t, int64(4), cat.Choices[0].Weight)
	assert.Equal(t, int64(1), cat.Choices[1].Weight, "absent weight defaults to 1")
	assert.Equal(t, int64(0), cat.Choices[2].Weight, "explicit zero is preserved, not defaulted")
}

func TestParse_GaussianScalingFactor(t *testing.T) {
	doc, err := Parse([]byte(`
defaulted:
  model: gaussian
  choices: [a, b, c]
tuned:
  model: gaussian
  stddev_scaling_factor: 5.5
  choices: [a, b, c]
`))
	require.NoError(t, err)

	assert.Equal(t, 3.0, doc["defaulted"].StddevScalingFactor)
	assert.Equal(t, 5.5, doc["tuned"].StddevScalingFactor)
}

func TestParse_LotteryDefaults(t *testing.T) {
	doc, err := Parse([]byte(`
chores:
  model: lottery
  choices:
    - name: dishes
    - name: laundry
      tickets: 7
      weight: 2
      reset: 3
    - name: vacuum
      tickets: 0
`))
	require.NoError(t, err)

	cat := doc["chores"]
	require.Len(t, cat.Choices, 3)

	assert.Equal(t, int64(1), cat.Choices[0].Tickets)
	assert.Equal(t, int64(1), cat.Choices[0].Weight)
	assert.Equal(t, int64(0), cat.Choices[0].Reset)

	assert.Equal(t, int64(7), cat.Choices[1].Tickets)
	assert.Equal(t, int64(2), cat.Choices[1].Weight)
	assert.Equal(t, int64(3), cat.Choices[1].Reset)

	assert.Equal(t, int64(0), cat.Choices[2].Tickets, "explicit zero tickets preserved")
}

func TestParse_InventoryDefaults(t *testing.T) {
	doc, err := Parse([]byte(`
pantry:
  model: inventory
  choices:
    - name: soup
      tickets: 4
    - name: beans
`))
	require.NoError(t, err)

	cat := doc["pantry"]
	assert.Equal(t, int64(4), cat.Choices[0].Tickets)
	assert.Equal(t, int64(1), cat.Choices[1].Tickets)
}

func TestParse_UnknownModel(t *testing.T) {
	_, err := Parse([]byte(`
bad:
  model: roulette
  choices: [a]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roulette")
}

func TestParse_WrongChoiceShape(t *testing.T) {
	// Mapping choices under a names-only model fail to decode.
	_, err := Parse([]byte(`
bad:
  model: even
  choices:
    - name: tacos
      weight: 2
`))
	require.Error(t, err)
}

func TestParse_EmptyDocument(t *testing.T) {
	doc, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestMarshal_RoundTripPreservesOrderAndDefaults(t *testing.T) {
	in := []byte(`
chores:
  model: lottery
  choices:
    - name: dishes
    - name: laundry
      tickets: 7
`)
	doc, err := Parse(in)
	require.NoError(t, err)

	out, err := Marshal(doc)
	require.NoError(t, err)

	// Defaults are written out explicitly on save.
	assert.Contains(t, string(out), "tickets: 1")
	assert.Contains(t, string(out), "reset: 0")
	assert.Contains(t, string(out), "weight: 1")

	// And the normalized form round-trips to the same structure.
	doc2, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, doc, doc2)
}

func TestMarshal_GaussianKeepsScalingFactor(t *testing.T) {
	doc, err := Parse([]byte(`
g:
  model: gaussian
  choices: [a, b]
`))
	require.NoError(t, err)

	out, err := Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "stddev_scaling_factor: 3")
}

func TestMarshal_ChoiceOrderPreserved(t *testing.T) {
	doc := Document{
		"queue": {
			Model:   KindLRU,
			Choices: []Choice{{Name: "z"}, {Name: "a"}, {Name: "m"}},
		},
	}
	out, err := Marshal(doc)
	require.NoError(t, err)

	doc2, err := Parse(out)
	require.NoError(t, err)
	cat := doc2["queue"]
	require.Len(t, cat.Choices, 3)
	assert.Equal(t, "z", cat.Choices[0].Name)
	assert.Equal(t, "a", cat.Choices[1].Name)
	assert.Equal(t, "m", cat.Choices[2].Name)
}

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cat     Category
		wantErr string
	}{
		{
			name: "valid even",
			cat:  Category{Model: KindEven, Choices: []Choice{{Name: "a"}}},
		},
		{
			name:    "unknown model",
			cat:     Category{Model: Kind("nope"), Choices: []Choice{{Name: "a"}}},
			wantErr: "unknown model",
		},
		{
			name:    "no choices",
			cat:     Category{Model: KindEven},
			wantErr: "no choices",
		},
		{
			name:    "empty name",
			cat:     Category{Model: KindEven, Choices: []Choice{{Name: ""}}},
			wantErr: "empty name",
		},
		{
			name:    "negative weight",
			cat:     Category{Model: KindWeighted, Choices: []Choice{{Name: "a", Weight: -1}}},
			wantErr: "negative weight",
		},
		{
			name:    "negative tickets",
			cat:     Category{Model: KindLottery, Choices: []Choice{{Name: "a", Tickets: -2}}},
			wantErr: "negative tickets",
		},
		{
			name:    "negative reset",
			cat:     Category{Model: KindLottery, Choices: []Choice{{Name: "a", Reset: -1}}},
			wantErr: "negative reset",
		},
		{
			name:    "gaussian zero scaling factor",
			cat:     Category{Model: KindGaussian, Choices: []Choice{{Name: "a"}}},
			wantErr: "stddev_scaling_factor",
		},
		{
			name: "all zero weights is valid",
			cat:  Category{Model: KindWeighted, Choices: []Choice{{Name: "a"}, {Name: "b"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDocument_Lookup_Canonical(t *testing.T) {
	// "café" stored decomposed (e + combining acute), looked up composed.
	decomposed := "cafe\u0301"
	composed := "caf\u00e9"

	doc := Document{
		decomposed: {Model: KindEven, Choices: []Choice{{Name: "x"}}},
	}

	cat, key, ok := doc.Lookup(composed)
	require.True(t, ok)
	assert.Equal(t, decomposed, key, "stored key is returned for write-back")
	assert.NotNil(t, cat)

	_, _, ok = doc.Lookup("missing")
	assert.False(t, ok)
}

func TestDocument_Lookup_ExactWins(t *testing.T) {
	a := &Category{Model: KindEven, Choices: []Choice{{Name: "exact"}}}
	doc := Document{"name": a}

	got, key, ok := doc.Lookup("name")
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, "name", key)
}

func TestCategory_Clone(t *testing.T) {
	orig := &Category{
		Model:   KindLottery,
		Choices: []Choice{{Name: "a", Tickets: 2}, {Name: "b", Tickets: 5}},
	}
	c := orig.Clone()
	c.Choices[0].Tickets = 99

	assert.Equal(t, int64(2), orig.Choices[0].Tickets, "clone must not alias the choice list")
}
