package dispatch

import (
	"math"

	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/member"
)

const (
	// ConversionCost is charged per argument that needs a non-identity
	// implicit conversion.
	ConversionCost = 1

	// NullableCost is charged for binding the absence value to a nullable
	// parameter.
	NullableCost = 1

	// OptionalCost is charged per omitted optional parameter. It dominates
	// any realistic sum of conversion units so that a candidate matched by
	// supplied arguments always beats one relying on a default.
	OptionalCost = 1000
)

// NoMatch is the reserved sentinel score meaning a candidate cannot satisfy
// a call under any scoring. All real scores are finite and lie in
// [0, NoMatch).
const NoMatch = math.MaxInt

// Call is the transient input to the scorer: the requested dispatch name,
// the number of generic type arguments supplied by the caller and the
// ordered argument values (which may contain nil).
type Call struct {
	Name         string
	GenericCount int
	Args         []any
}

// NewCall builds a Call value.
func NewCall(name string, genericCount int, args ...any) Call {
	return Call{Name: name, GenericCount: genericCount, Args: args}
}

// Score measures how far a call's arguments deviate from a candidate's
// declared signature. preferredName is the candidate's external dispatch
// name; the signature's internal name plays no part in matching.
//
// The gates run first: a name or generic-arity mismatch, or more arguments
// than declared parameters without a variadic tail, is NoMatch without
// further work. The declared parameters are then walked in order, charging
// the provided-parameter or missing-parameter rule per position; a variadic
// tail consumes all remaining arguments, each scored individually against
// the element type. The first NoMatch short-circuits.
func Score(preferredName string, sig member.Signature, call Call) int {
	if call.Name != preferredName || call.GenericCount != sig.GenericCount() {
		return NoMatch
	}

	params := sig.Parameters()
	if len(call.Args) > len(params) && !sig.Variadic() {
		return NoMatch
	}

	score := 0
	for i, p := range params {
		if p.Variadic {
			// The tail binds every remaining argument; zero is fine.
			for _, v := range call.Args[min(i, len(call.Args)):] {
				cost := scoreProvided(v, p)
				if cost == NoMatch {
					return NoMatch
				}
				score += cost
			}
			break
		}

		if i < len(call.Args) {
			cost := scoreProvided(call.Args[i], p)
			if cost == NoMatch {
				return NoMatch
			}
			score += cost
			continue
		}

		if !p.Optional {
			return NoMatch
		}
		score += OptionalCost
	}

	return score
}

// scoreProvided applies the provided-parameter rule: argument v against the
// declared parameter p.
//
// Generic placeholders resolve to their constraint type and, when a real
// conversion would be needed, still charge nothing: the concrete type is
// substituted after selection, so binding to a placeholder is free as long
// as the constraint admits the argument.
func scoreProvided(v any, p member.Parameter) int {
	effective := p.EffectiveType()

	if core.IsNil(v) {
		if core.IsNullable(effective) {
			return NullableCost
		}
		return NoMatch
	}

	runtime := core.RuntimeTypeOf(v)
	if runtime.Equal(effective) {
		return 0
	}

	if !core.CanConvert(runtime, effective) {
		return NoMatch
	}

	if p.Placeholder() {
		return 0
	}
	return ConversionCost
}
