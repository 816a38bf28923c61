package config

// Kind identifies a selection model. The set of kinds is closed: the
// engine dispatches on the kind with a switch, not a registry.
type Kind string

const (
	KindEven      Kind = "even"
	KindGaussian  Kind = "gaussian"
	KindInventory Kind = "inventory"
	KindLottery   Kind = "lottery"
	KindLRU       Kind = "lru"
	KindWeighted  Kind = "weighted"
)

// Known reports whether k is one of the supported model kinds.
func (k Kind) Known() bool {
	switch k {
	case KindEven, KindGaussian, KindInventory, KindLottery, KindLRU, KindWeighted:
		return true
	}
	return false
}

// Defaults applied when a field is absent from the document.
const (
	// DefaultWeight is the default weight and ticket count.
	DefaultWeight = 1

	// DefaultReset is the ticket count a lottery pick is reset to.
	DefaultReset = 0

	// DefaultStddevScalingFactor divides the choice count to derive the
	// gaussian standard deviation.
	DefaultStddevScalingFactor = 3.0
)

// Choice is a single named item within a category.
//
// Which numeric fields are meaningful depends on the category's model;
// the rest stay at their zero/default values and are not serialized.
type Choice struct {
	Name string

	// Weight is the relative chance for the weighted model, and the
	// number of tickets added to a non-picked entry for the lottery
	// model (the reset-weight).
	Weight int64

	// Tickets is the current ticket count (lottery, inventory).
	Tickets int64

	// Reset is the ticket count the entry returns to when picked
	// (lottery only).
	Reset int64
}

// Category is a model kind plus its ordered choices.
//
// Choices is never reordered by (de)serialization; only an accepted
// pick under an ordering-sensitive model repositions a single entry.
type Category struct {
	Model   Kind
	Choices []Choice

	// StddevScalingFactor is owned by the gaussian model. It defaults
	// to 3.0 on load and is preserved verbatim through a pick.
	StddevScalingFactor float64
}

// Document is the whole config file: category name -> category.
type Document map[string]*Category

// Clone returns a deep copy of the category. The engine hands callers
// mutated state by value semantics; cloning keeps aborted invocations
// trivially side-effect free in tests.
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	out := &Category{
		Model:               c.Model,
		StddevScalingFactor: c.StddevScalingFactor,
		Choices:             make([]Choice, len(c.Choices)),
	}
	copy(out.Choices, c.Choices)
	return out
}
