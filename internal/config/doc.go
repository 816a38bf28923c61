// Package config defines the pick configuration document.
//
// The document is a YAML mapping of category names to categories. Each
// category declares a selection model and an ordered list of choices.
// The choice shape depends on the model:
//
//   - even, gaussian, lru: choices are plain strings
//   - weighted: mappings with name and weight
//   - lottery: mappings with name, tickets, weight, and reset
//   - inventory: mappings with name and tickets
//
// Absent numeric fields take their documented defaults (weight 1,
// tickets 1, reset 0, stddev_scaling_factor 3.0) at load time, so a
// loaded document is always fully populated. Serialization writes the
// populated values back out; fields the engine does not touch round-trip
// unchanged, and top-level map keys are emitted in sorted order.
//
// For the ordering-sensitive models (gaussian, lru) the choice order is
// semantic: the front of the list is the least recently picked side, the
// end the most recent. Loading and saving must preserve that order
// exactly.
package config
