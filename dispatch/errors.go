package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/dynabind/member"
)

// ErrNilCandidates is returned when a registry is constructed from a nil
// candidate list. This is a programming error and fails fast at
// construction, not at first use.
var ErrNilCandidates = errors.New("dynabind: candidate list must not be nil")

// NotFoundError reports that no registered candidate survived scoring for a
// call. It carries the requested dispatch name for diagnostics.
type NotFoundError struct {
	Member string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dynabind: member %q not found", e.Member)
}

// AmbiguousError reports that two or more candidates tied for the lowest
// score. It carries the full set of tied winners so the caller can
// disambiguate, for example by supplying more specific argument types.
type AmbiguousError struct {
	Member     string
	Candidates []member.Candidate
}

func (e *AmbiguousError) Error() string {
	sigs := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		sigs[i] = c.Signature().String()
	}
	return fmt.Sprintf("dynabind: member %q is ambiguous between %s",
		e.Member, strings.Join(sigs, "; "))
}
