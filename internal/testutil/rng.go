// Package testutil provides deterministic test doubles shared across
// packages.
package testutil

// ScriptRNG replays fixed random values so tests can assert exact
// index selection from the cumulative-weight and gaussian-mapping
// algorithms.
//
// Uniform draws come from Uniforms (values in [0, 1)), normal draws
// from Normals. Each list wraps around when consumed, so a one-element
// script answers every call with the same value. An empty list answers
// with zero, which deterministically selects the first positive-weight
// candidate (or index 0 for gaussian).
type ScriptRNG struct {
	Uniforms []float64
	Normals  []float64

	nextUniform int
	nextNormal  int
}

// Float64 returns the next scripted uniform value.
func (r *ScriptRNG) Float64() float64 {
	if len(r.Uniforms) == 0 {
		return 0
	}
	v := r.Uniforms[r.nextUniform%len(r.Uniforms)]
	r.nextUniform++
	return v
}

// NormFloat64 returns the next scripted normal variate.
func (r *ScriptRNG) NormFloat64() float64 {
	if len(r.Normals) == 0 {
		return 0
	}
	v := r.Normals[r.nextNormal%len(r.Normals)]
	r.nextNormal++
	return v
}

// Reset rewinds both scripts for test reuse.
func (r *ScriptRNG) Reset() {
	r.nextUniform = 0
	r.nextNormal = 0
}
