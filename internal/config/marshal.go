package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The YAML shape of a choice depends on the category's model, so
// Category implements the yaml (un)marshal interfaces itself rather
// than leaning on struct tags.

// rawCategory is the model-independent first pass over a category node.
// Choices stay as raw nodes until the model kind is known.
type rawCategory struct {
	Model               Kind        `yaml:"model"`
	StddevScalingFactor *float64    `yaml:"stddev_scaling_factor"`
	Choices             []yaml.Node `yaml:"choices"`
}

// Wire shapes for mapping-style choices. Pointer fields distinguish
// "absent" from "zero" so defaults only apply to absent fields.
type weightedWire struct {
	Name   string `yaml:"name"`
	Weight *int64 `yaml:"weight"`
}

type lotteryWire struct {
	Name    string `yaml:"name"`
	Reset   *int64 `yaml:"reset"`
	Tickets *int64 `yaml:"tickets"`
	Weight  *int64 `yaml:"weight"`
}

type inventoryWire struct {
	Name    string `yaml:"name"`
	Tickets *int64 `yaml:"tickets"`
}

// UnmarshalYAML decodes a category, applying the per-model choice shape
// and the documented defaults for absent fields.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var raw rawCategory
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decode category: %w", err)
	}
	if !raw.Model.Known() {
		return fmt.Errorf("unknown model kind %q", string(raw.Model))
	}

	c.Model = raw.Model
	c.StddevScalingFactor = 0
	if raw.Model == KindGaussian {
		c.StddevScalingFactor = DefaultStddevScalingFactor
		if raw.StddevScalingFactor != nil {
			c.StddevScalingFactor = *raw.StddevScalingFactor
		}
	}

	c.Choices = make([]Choice, 0, len(raw.Choices))
	for i := range raw.Choices {
		choice, err := decodeChoice(raw.Model, &raw.Choices[i])
		if err != nil {
			return fmt.Errorf("choice %d: %w", i, err)
		}
		c.Choices = append(c.Choices, choice)
	}
	return nil
}

// decodeChoice decodes one choice node according to the model kind.
func decodeChoice(model Kind, node *yaml.Node) (Choice, error) {
	switch model {
	case KindEven, KindGaussian, KindLRU:
		var name string
		if err := node.Decode(&name); err != nil {
			return Choice{}, fmt.Errorf("decode name: %w", err)
		}
		return Choice{Name: name}, nil

	case KindWeighted:
		var w weightedWire
		if err := node.Decode(&w); err != nil {
			return Choice{}, fmt.Errorf("decode weighted choice: %w", err)
		}
		return Choice{Name: w.Name, Weight: orDefault(w.Weight, DefaultWeight)}, nil

	case KindLottery:
		var w lotteryWire
		if err := node.Decode(&w); err != nil {
			return Choice{}, fmt.Errorf("decode lottery choice: %w", err)
		}
		return Choice{
			Name:    w.Name,
			Reset:   orDefault(w.Reset, DefaultReset),
			Tickets: orDefault(w.Tickets, DefaultWeight),
			Weight:  orDefault(w.Weight, DefaultWeight),
		}, nil

	case KindInventory:
		var w inventoryWire
		if err := node.Decode(&w); err != nil {
			return Choice{}, fmt.Errorf("decode inventory choice: %w", err)
		}
		return Choice{Name: w.Name, Tickets: orDefault(w.Tickets, DefaultWeight)}, nil

	default:
		return Choice{}, fmt.Errorf("unknown model kind %q", string(model))
	}
}

func orDefault(v *int64, def int64) int64 {
	if v != nil {
		return *v
	}
	return def
}

// Output shapes. Field order here is the on-disk field order.
type namesOut struct {
	Model   Kind     `yaml:"model"`
	Choices []string `yaml:"choices"`
}

type gaussianOut struct {
	Model               Kind     `yaml:"model"`
	StddevScalingFactor float64  `yaml:"stddev_scaling_factor"`
	Choices             []string `yaml:"choices"`
}

type weightedOut struct {
	Model   Kind `yaml:"model"`
	Choices []struct {
		Name   string `yaml:"name"`
		Weight int64  `yaml:"weight"`
	} `yaml:"choices"`
}

type lotteryOut struct {
	Model   Kind `yaml:"model"`
	Choices []struct {
		Name    string `yaml:"name"`
		Reset   int64  `yaml:"reset"`
		Tickets int64  `yaml:"tickets"`
		Weight  int64  `yaml:"weight"`
	} `yaml:"choices"`
}

type inventoryOut struct {
	Model   Kind `yaml:"model"`
	Choices []struct {
		Name    string `yaml:"name"`
		Tickets int64  `yaml:"tickets"`
	} `yaml:"choices"`
}

// MarshalYAML encodes the category in its model's wire shape. Defaults
// are written out explicitly, so a load/save cycle normalizes the
// document but never changes its meaning.
func (c Category) MarshalYAML() (interface{}, error) {
	switch c.Model {
	case KindEven, KindLRU:
		return namesOut{Model: c.Model, Choices: c.names()}, nil

	case KindGaussian:
		return gaussianOut{
			Model:               c.Model,
			StddevScalingFactor: c.StddevScalingFactor,
			Choices:             c.names(),
		}, nil

	case KindWeighted:
		out := weightedOut{Model: c.Model}
		for _, ch := range c.Choices {
			out.Choices = append(out.Choices, struct {
				Name   string `yaml:"name"`
				Weight int64  `yaml:"weight"`
			}{ch.Name, ch.Weight})
		}
		return out, nil

	case KindLottery:
		out := lotteryOut{Model: c.Model}
		for _, ch := range c.Choices {
			out.Choices = append(out.Choices, struct {
				Name    string `yaml:"name"`
				Reset   int64  `yaml:"reset"`
				Tickets int64  `yaml:"tickets"`
				Weight  int64  `yaml:"weight"`
			}{ch.Name, ch.Reset, ch.Tickets, ch.Weight})
		}
		return out, nil

	case KindInventory:
		out := inventoryOut{Model: c.Model}
		for _, ch := range c.Choices {
			out.Choices = append(out.Choices, struct {
				Name    string `yaml:"name"`
				Tickets int64  `yaml:"tickets"`
			}{ch.Name, ch.Tickets})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown model kind %q", string(c.Model))
	}
}

func (c Category) names() []string {
	names := make([]string, len(c.Choices))
	for i, ch := range c.Choices {
		names[i] = ch.Name
	}
	return names
}
