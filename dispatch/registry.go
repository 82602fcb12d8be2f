package dispatch

import (
	"github.com/google/uuid"
	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/logging"
	"github.com/hupe1980/dynabind/member"
)

// Registry holds the candidate members of one bound target and routes calls
// to the best-scoring candidate. Candidates and the target reference are
// fixed at construction; the registry carries no mutable state across calls,
// so concurrent Invoke calls are safe as long as the executed members are.
type Registry struct {
	target     any
	candidates []member.Candidate
	logger     logging.Logger
}

// Option customizes a Registry.
type Option func(*Registry)

// WithLogger installs a structured logger; the default is silent.
func WithLogger(l logging.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry builds a registry over the given target instance and candidate
// list. A nil candidate list is a programming error and fails immediately;
// an empty list is legal (every call then fails with NotFoundError).
func NewRegistry(target any, candidates []member.Candidate, opts ...Option) (*Registry, error) {
	if candidates == nil {
		return nil, ErrNilCandidates
	}

	r := &Registry{
		target:     target,
		candidates: append([]member.Candidate(nil), candidates...),
		logger:     logging.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Target returns the bound target instance.
func (r *Registry) Target() any { return r.target }

// Candidates returns a copy of the registered candidate list.
func (r *Registry) Candidates() []member.Candidate {
	return append([]member.Candidate(nil), r.candidates...)
}

// Invoke scores every candidate for the call, selects the unique lowest
// scorer and executes it, returning the member's result (which may be nil
// when the member intends no return). It fails with *NotFoundError when no
// candidate survives scoring and with *AmbiguousError when the lowest score
// is tied.
func (r *Registry) Invoke(name string, genericTypes []core.Type, args ...any) (any, error) {
	winner, err := r.Resolve(name, genericTypes, args...)
	if err != nil {
		return nil, err
	}
	return winner.Invoke(r.target, genericTypes, args)
}

// Resolve runs selection without executing the winner. It is useful for
// validation and for callers that manage execution themselves.
func (r *Registry) Resolve(name string, genericTypes []core.Type, args ...any) (member.Candidate, error) {
	call := NewCall(name, len(genericTypes), args...)
	id := uuid.NewString()

	r.logger.Debug("dispatch.resolve.start", "member", name, "dispatch_id", id,
		"generic_count", call.GenericCount, "arg_count", len(args))

	best := NoMatch
	var winners []member.Candidate
	for _, c := range r.candidates {
		score := Score(c.PreferredName(), c.Signature(), call)
		if score == NoMatch {
			continue
		}
		r.logger.Debug("dispatch.resolve.candidate", "member", name, "dispatch_id", id,
			"signature", c.Signature().String(), "score", score)
		switch {
		case score < best:
			best = score
			winners = winners[:0]
			winners = append(winners, c)
		case score == best:
			winners = append(winners, c)
		}
	}

	switch len(winners) {
	case 0:
		r.logger.Warn("dispatch.resolve.not_found", "member", name, "dispatch_id", id)
		return nil, &NotFoundError{Member: name}
	case 1:
		r.logger.Debug("dispatch.resolve.winner", "member", name, "dispatch_id", id,
			"signature", winners[0].Signature().String(), "score", best)
		return winners[0], nil
	default:
		r.logger.Warn("dispatch.resolve.ambiguous", "member", name, "dispatch_id", id,
			"tied", len(winners), "score", best)
		return nil, &AmbiguousError{Member: name, Candidates: winners}
	}
}

// Check validates that the call resolves to exactly one candidate without
// executing anything.
func (r *Registry) Check(name string, genericTypes []core.Type, args ...any) error {
	_, err := r.Resolve(name, genericTypes, args...)
	return err
}
