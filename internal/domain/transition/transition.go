// Package transition holds the fixed per-entity transition tables and the
// pure legality check behind every lifecycle command. The engine performs no
// I/O: it maps (current state, requested state) to either a list of required
// side effects for the orchestrator to execute atomically, or an
// InvalidTransitionError.
package transition

import "freelance-engagement-backend/internal/domain/errs"

// Effect names a side effect the orchestrator must execute in the same
// atomic unit as the status write.
type Effect string

const (
	EffectCreateProjectFromProposal Effect = "create_project_from_proposal"
	EffectStampSignatureDate        Effect = "stamp_signature_date"
	EffectStampDeliveryDate         Effect = "stamp_delivery_date"
	EffectRecomputeProjectProgress  Effect = "recompute_project_progress"
)

type edge struct{ from, to string }

// Rules is one entity's transition table.
type Rules struct {
	Entity  string
	Allowed map[string][]string
	effects map[edge][]Effect
}

func New(entity string, allowed map[string][]string) Rules {
	return Rules{Entity: entity, Allowed: allowed, effects: map[edge][]Effect{}}
}

// WithEffects registers the side effects implied by one edge.
func (r Rules) WithEffects(from, to string, effects ...Effect) Rules {
	r.effects[edge{from, to}] = effects
	return r
}

// From returns the states reachable from the given state. A state with no
// outgoing edges is terminal.
func (r Rules) From(state string) []string {
	return r.Allowed[state]
}

func (r Rules) CanTransition(from, to string) bool {
	for _, s := range r.Allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Attempt validates the requested transition and returns the side effects the
// orchestrator must apply along with the status write.
func (r Rules) Attempt(from, to string) ([]Effect, error) {
	if !r.CanTransition(from, to) {
		return nil, &errs.InvalidTransitionError{Entity: r.Entity, From: from, To: to}
	}
	return r.effects[edge{from, to}], nil
}
