package member

import "github.com/hupe1980/dynabind/core"

// Parameter is one declared parameter of a member signature.
//
// For a variadic tail the Type field carries the element type: the parameter
// binds zero or more trailing call arguments, each individually checked
// against Type.
type Parameter struct {
	// Type is the declared semantic type (element type for a variadic
	// tail). It may be a generic placeholder of the member.
	Type core.Type

	// Optional marks a parameter that substitutes a default instead of
	// failing the match when no argument is supplied for it.
	Optional bool

	// Variadic marks the trailing rest parameter. Only the last parameter
	// of a signature may carry this flag.
	Variadic bool
}

// Param declares a required, single-slot parameter.
func Param(t core.Type) Parameter {
	return Parameter{Type: t}
}

// OptionalParam declares a parameter that defaults when omitted.
func OptionalParam(t core.Type) Parameter {
	return Parameter{Type: t, Optional: true}
}

// VariadicParam declares the trailing rest parameter with the given element
// type.
func VariadicParam(elem core.Type) Parameter {
	return Parameter{Type: elem, Variadic: true}
}

// Placeholder reports whether the declared type is an unbound generic slot
// of the member.
func (p Parameter) Placeholder() bool {
	return core.IsPlaceholder(p.Type)
}

// EffectiveType resolves a generic placeholder to its constraint type; for a
// concrete parameter it is the declared type itself.
func (p Parameter) EffectiveType() core.Type {
	return core.EffectiveType(p.Type)
}
