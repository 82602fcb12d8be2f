package member

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned when a signature is declared without a name.
	ErrEmptyName = errors.New("dynabind: signature name must not be empty")

	// ErrNegativeGenericCount is returned for a negative generic slot count.
	ErrNegativeGenericCount = errors.New("dynabind: generic type count must not be negative")

	// ErrVariadicNotLast is returned when a variadic parameter is declared
	// anywhere but the last position.
	ErrVariadicNotLast = errors.New("dynabind: only the last parameter may be variadic")

	// ErrVariadicOptional is returned when a parameter is flagged both
	// variadic and optional; a rest parameter already binds zero arguments.
	ErrVariadicOptional = errors.New("dynabind: a variadic parameter must not be optional")

	// ErrMissingParameterType is returned when a parameter carries no type.
	ErrMissingParameterType = errors.New("dynabind: parameter type must not be nil")
)

// Signature is the immutable description of one invocable member: its
// internal name, the number of generic type slots it declares and its
// ordered parameter list. Construct signatures with NewSignature; the zero
// value is not valid.
type Signature struct {
	name         string
	genericCount int
	params       []Parameter
}

// NewSignature builds a validated signature. It enforces the structural
// invariants: non-empty name, non-negative generic count, typed parameters,
// at most one variadic parameter and only in the last position, and no
// variadic parameter that is also optional.
func NewSignature(name string, genericCount int, params ...Parameter) (Signature, error) {
	if name == "" {
		return Signature{}, ErrEmptyName
	}
	if genericCount < 0 {
		return Signature{}, fmt.Errorf("%w: %d", ErrNegativeGenericCount, genericCount)
	}
	for i, p := range params {
		if p.Type == nil {
			return Signature{}, fmt.Errorf("%w: %s parameter %d", ErrMissingParameterType, name, i)
		}
		if p.Variadic {
			if i != len(params)-1 {
				return Signature{}, fmt.Errorf("%w: %s parameter %d", ErrVariadicNotLast, name, i)
			}
			if p.Optional {
				return Signature{}, fmt.Errorf("%w: %s parameter %d", ErrVariadicOptional, name, i)
			}
		}
	}

	return Signature{
		name:         name,
		genericCount: genericCount,
		params:       append([]Parameter(nil), params...),
	}, nil
}

// MustSignature is NewSignature for statically known declarations; it panics
// on a structural error.
func MustSignature(name string, genericCount int, params ...Parameter) Signature {
	s, err := NewSignature(name, genericCount, params...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the internal member name.
func (s Signature) Name() string { return s.name }

// GenericCount returns the number of generic type slots the member declares.
func (s Signature) GenericCount() int { return s.genericCount }

// ParameterCount returns the number of declared parameters.
func (s Signature) ParameterCount() int { return len(s.params) }

// Parameter returns the declared parameter at position i.
func (s Signature) Parameter(i int) Parameter { return s.params[i] }

// Parameters returns a copy of the ordered parameter list.
func (s Signature) Parameters() []Parameter {
	return append([]Parameter(nil), s.params...)
}

// Variadic reports whether the last declared parameter is a variadic tail.
func (s Signature) Variadic() bool {
	return len(s.params) > 0 && s.params[len(s.params)-1].Variadic
}

// String renders the signature for diagnostics, e.g.
// "Add[1](int, string=, ...float64)" where "=" marks an optional parameter.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.name)
	if s.genericCount > 0 {
		fmt.Fprintf(&b, "[%d]", s.genericCount)
	}
	b.WriteByte('(')
	for i, p := range s.params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Variadic {
			b.WriteString("...")
		}
		b.WriteString(p.Type.String())
		if p.Optional {
			b.WriteByte('=')
		}
	}
	b.WriteByte(')')
	return b.String()
}
