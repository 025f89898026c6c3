// SPDX-License-Identifier: MIT
// Package: hypernet/transition
//
// weight.go: the transition formula.
//
//	w(u→v) = Σ_{e ∈ E(u,v)} ω(e)·γ_e(u)·γ_e(v) / δ'(e,u)
//	p(u→v) = w(u→v) / d(u)
//
//	δ'(e,u) = δ(e)            with self-links
//	δ'(e,u) = δ(e) − γ_e(u)   without self-links
//
// Both forms apply the same δ' policy. A non-positive δ' or d(u) is a data
// integrity failure (ErrDegenerateMass), never a zero weight.

package transition

import "fmt"

// Form selects between the raw weight and the degree-normalised probability.
type Form int

const (
	// FormWeight is the raw, unnormalised transition weight (clique/unipartite).
	FormWeight Form = iota
	// FormProbability divides the weight by d(u) (bipartite/multilayer walks).
	FormProbability
)

// String implements fmt.Stringer.
func (f Form) String() string {
	switch f {
	case FormWeight:
		return "weight"
	case FormProbability:
		return "probability"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Step is one walk hop: leave From through FromEdge, arrive at To through ToEdge.
type Step struct {
	From     int
	FromEdge int
	To       int
	ToEdge   int
}

// Weight is Transition(step, FormWeight, selfLinks).
func (m *Model) Weight(step Step, selfLinks bool) (float64, error) {
	return m.Transition(step, FormWeight, selfLinks)
}

// Probability is Transition(step, FormProbability, selfLinks).
func (m *Model) Probability(step Step, selfLinks bool) (float64, error) {
	return m.Transition(step, FormProbability, selfLinks)
}

// Transition evaluates the transition formula for step.
//
// Implementation:
//   - Stage 1: Check the hop endpoints are incident to their edges.
//   - Stage 2: Accumulate ω(e)·γ_e(u)·γ_e(v)/δ'(e,u) over E(u,v), ascending e.
//   - Stage 3: For FormProbability, divide by d(u).
//
// The sum depends on the endpoints only; FromEdge/ToEdge identify the hop and
// are validated, so callers cannot score a step that the walk could not take.
//
// Errors:
//   - ErrWeightLookup: From ∉ FromEdge, To ∉ ToEdge, or a γ missing for a shared edge.
//   - ErrDegenerateMass: δ'(e,u) ≤ 0 for a shared edge, or d(u) ≤ 0 in probability form.
//
// Complexity: O(|E(u)| + |E(v)|).
func (m *Model) Transition(step Step, form Form, selfLinks bool) (float64, error) {
	u, v := step.From, step.To
	if !m.incident(step.FromEdge, u) {
		return 0, fmt.Errorf("Transition: vertex %d not in hyperedge %d: %w", u, step.FromEdge, ErrWeightLookup)
	}
	if !m.incident(step.ToEdge, v) {
		return 0, fmt.Errorf("Transition: vertex %d not in hyperedge %d: %w", v, step.ToEdge, ErrWeightLookup)
	}

	var sum float64
	it := m.shared(u, v).Iterator()
	for it.HasNext() {
		e := int(it.Next())

		gu, err := m.Gamma(e, u)
		if err != nil {
			return 0, fmt.Errorf("Transition: %w", err)
		}
		gv, err := m.Gamma(e, v)
		if err != nil {
			return 0, fmt.Errorf("Transition: %w", err)
		}

		denom := m.effectiveMass(e, gu, selfLinks)
		if denom <= 0 {
			return 0, fmt.Errorf("Transition(u=%d, v=%d): hyperedge %d effective mass %g: %w",
				u, v, e, denom, ErrDegenerateMass)
		}

		sum += m.omega[e] * gu * gv / denom
	}

	if form == FormWeight {
		return sum, nil
	}

	d := m.degree[u]
	if d <= 0 {
		return 0, fmt.Errorf("Transition(u=%d): degree %g: %w", u, d, ErrDegenerateMass)
	}

	return sum / d, nil
}

// EffectiveMass returns δ'(e,u) under the given self-link policy.
//
// Errors: ErrWeightLookup if u is not incident to e.
func (m *Model) EffectiveMass(e, u int, selfLinks bool) (float64, error) {
	gu, err := m.Gamma(e, u)
	if err != nil {
		return 0, fmt.Errorf("EffectiveMass: %w", err)
	}

	return m.effectiveMass(e, gu, selfLinks), nil
}

func (m *Model) effectiveMass(e int, gu float64, selfLinks bool) float64 {
	if selfLinks {
		return m.mass[e]
	}

	return m.mass[e] - gu
}
