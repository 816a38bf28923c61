// Package engine implements the pick engine.
//
// The engine drives one pick invocation for one category: it asks the
// category's model for a candidate, presents it through the ui.UI
// boundary, and loops on decline until the user accepts, aborts, or no
// eligible candidate remains.
//
// ARCHITECTURE:
//
// Decline loop as an explicit state machine:
//  1. Offer: the model's select runs over (category, excluded set).
//     An exhausted signal is a normal terminal outcome, not a crash.
//  2. Present: the candidate goes to the UI, which answers accept,
//     decline, or abort.
//  3. Accept applies the model's mutation and terminates. Decline adds
//     the index to the excluded set and re-offers. Abort terminates
//     with the state untouched.
//
// Exclusion is monotonic within an invocation, and every iteration
// either produces a fresh candidate or signals exhaustion, so
// termination is structural. This replaces the historical failure mode
// of re-offering a declined item forever (or spinning when an item had
// zero chance of being picked).
//
// The six model kinds are a closed set dispatched by the category's
// declared kind. Selection is pure over (state, excluded, RNG);
// mutation happens exactly once, on acceptance. The RNG and the UI are
// injected capabilities so tests can script both and assert exact
// index selection.
package engine
