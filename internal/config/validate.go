package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure, so callers can
// classify them with errors.Is without matching message text.
var ErrInvalid = errors.New("invalid category")

// Validate checks the invariants the engine relies on at entry:
// a known model, a non-empty choice list, non-empty names, non-negative
// numeric fields, and a positive scaling factor for gaussian.
//
// Validation does not reject categories whose every choice has zero
// selection probability; the engine reports those as exhausted, which
// keeps "declined everything" and "nothing has tickets left" on the
// same code path.
func (c *Category) Validate() error {
	if !c.Model.Known() {
		return fmt.Errorf("%w: unknown model kind %q", ErrInvalid, string(c.Model))
	}
	if len(c.Choices) == 0 {
		return fmt.Errorf("%w: category has no choices", ErrInvalid)
	}
	if c.Model == KindGaussian && c.StddevScalingFactor <= 0 {
		return fmt.Errorf("%w: stddev_scaling_factor must be positive, got %v",
			ErrInvalid, c.StddevScalingFactor)
	}
	for i, ch := range c.Choices {
		if ch.Name == "" {
			return fmt.Errorf("%w: choice %d has an empty name", ErrInvalid, i)
		}
		if ch.Weight < 0 {
			return fmt.Errorf("%w: choice %q has negative weight %d", ErrInvalid, ch.Name, ch.Weight)
		}
		if ch.Tickets < 0 {
			return fmt.Errorf("%w: choice %q has negative tickets %d", ErrInvalid, ch.Name, ch.Tickets)
		}
		if ch.Reset < 0 {
			return fmt.Errorf("%w: choice %q has negative reset %d", ErrInvalid, ch.Name, ch.Reset)
		}
	}
	return nil
}
