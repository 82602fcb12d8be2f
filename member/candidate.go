package member

import (
	"errors"

	"github.com/hupe1980/dynabind/core"
)

var (
	// ErrNilInvokeFunc is returned when a method is registered without an
	// implementation.
	ErrNilInvokeFunc = errors.New("dynabind: invoke function must not be nil")
)

// InvokeFunc executes a member on the bound target. genericTypes carries the
// caller-supplied bindings for the member's generic slots, in declaration
// order; args are the call arguments exactly as dispatched. The returned
// value may be nil when the member intends no result.
type InvokeFunc func(target any, genericTypes []core.Type, args []any) (any, error)

// Candidate is one registered invocable member considered for a call. A
// candidate is built once at bind time and immutable thereafter; the
// registry that built it is its sole owner.
//
// PreferredName is the externally visible dispatch name; it is independent
// of the signature's internal name so a member can be exposed under a
// different public spelling.
type Candidate interface {
	// PreferredName returns the dispatch name candidates are matched by.
	PreferredName() string

	// Signature returns the declared signature.
	Signature() Signature

	// Invoke executes the member. Dispatch calls it at most once per call,
	// and only after the candidate won selection.
	Invoke(target any, genericTypes []core.Type, args []any) (any, error)
}

// Method is the closure-backed candidate variant: an explicit invoke
// capability registered at bind time.
type Method struct {
	preferredName string
	sig           Signature
	fn            InvokeFunc
}

// NewMethod pairs a signature with its implementation under the given
// dispatch name.
func NewMethod(preferredName string, sig Signature, fn InvokeFunc) (*Method, error) {
	if preferredName == "" {
		return nil, ErrEmptyName
	}
	if fn == nil {
		return nil, ErrNilInvokeFunc
	}
	return &Method{preferredName: preferredName, sig: sig, fn: fn}, nil
}

// PreferredName returns the dispatch name.
func (m *Method) PreferredName() string { return m.preferredName }

// Signature returns the declared signature.
func (m *Method) Signature() Signature { return m.sig }

// Invoke runs the registered closure.
func (m *Method) Invoke(target any, genericTypes []core.Type, args []any) (any, error) {
	return m.fn(target, genericTypes, args)
}
