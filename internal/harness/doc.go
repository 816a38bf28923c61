// Package harness provides scenario-driven conformance testing for the
// pick engine.
//
// A scenario bundles a config document, a category to pick from, a
// scripted sequence of prompt responses, and scripted random values.
// Running it executes the real engine end to end with deterministic
// inputs, so the outcome, the accepted choice, and the mutated config
// are all reproducible.
//
// # Scenario Format
//
// Scenarios are defined in YAML files:
//
//	name: lottery_accept_first
//	description: "Accepting a lottery pick resets it and grows the rest"
//	category: dinner
//	config: |
//	  dinner:
//	    model: lottery
//	    choices:
//	      - {name: tacos, tickets: 1, weight: 1}
//	      - {name: ramen, tickets: 1, weight: 1}
//	responses: [accept]
//	uniforms: [0.0]
//
// # Deterministic Testing
//
// The harness replaces every nondeterministic input:
//
//   - Prompt responses come from the scripted list, not a terminal
//   - Uniform and normal draws come from fixed value lists
//   - Pick tokens come from the scenario's fixed token
//
// Identical scenarios therefore produce identical final documents,
// which makes the serialized config suitable for golden file
// comparison.
package harness
