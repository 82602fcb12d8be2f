package member

import (
	"fmt"

	"github.com/hupe1980/dynabind/core"
)

// ArgumentError reports that an argument could not be represented as the
// declared parameter type at invocation time. Scoring only checks
// compatibility; producing the concrete representation can still fail here.
type ArgumentError struct {
	Member string    // Preferred name of the invoked member
	Index  int       // Zero-based call argument position
	Value  any       // The offending argument
	Want   core.Type // The declared parameter type
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("dynabind: argument %d of %s: cannot represent %T as %s",
		e.Index, e.Member, e.Value, e.Want)
}

// IncompatibleVariadicArgumentError reports that a trailing variadic element
// could not be converted to the declared element type at invocation time. It
// is deliberately distinct from the dispatch-level not-found and ambiguity
// failures so callers can tell a selection problem from an execution one.
type IncompatibleVariadicArgumentError struct {
	Member  string    // Preferred name of the invoked member
	Index   int       // Zero-based call argument position
	Value   any       // The offending element
	Element core.Type // The declared element type of the variadic tail
}

func (e *IncompatibleVariadicArgumentError) Error() string {
	return fmt.Sprintf("dynabind: variadic argument %d of %s: cannot represent %T as %s",
		e.Index, e.Member, e.Value, e.Element)
}
