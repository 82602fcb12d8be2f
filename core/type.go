package core

import (
	"fmt"
	"math/big"
	"reflect"
)

// Type is a first-class runtime type descriptor. Implementations are
// immutable values that support identity comparison via Equal. dynabind uses
// Type tokens everywhere a declared parameter type, a generic constraint or a
// runtime argument type is needed, so the dispatch layers never touch
// reflection directly.
//
// The concrete variants are:
//
//   - reflection-backed tokens created by TypeOf / TypeFor / RuntimeTypeOf
//   - Any, the universal top type every value converts to
//   - Nullable wrappers created by NullableOf
//   - generic placeholders created by Generic
type Type interface {
	// String returns a human-readable name for diagnostics.
	String() string

	// Equal reports whether the other descriptor denotes the same type.
	Equal(other Type) bool
}

// goType is the reflection-backed Type implementation.
type goType struct {
	rt reflect.Type
}

func (t goType) String() string { return t.rt.String() }

func (t goType) Equal(other Type) bool {
	o, ok := other.(goType)
	return ok && o.rt == t.rt
}

// anyType is the universal top type.
type anyType struct{}

func (anyType) String() string { return "any" }

func (anyType) Equal(other Type) bool {
	_, ok := other.(anyType)
	return ok
}

// Any is the universal top type. Every value, including nil, may be used
// where Any is declared.
var Any Type = anyType{}

// Decimal is the arbitrary-precision numeric type every numeric primitive
// kind implicitly widens to. It stands in for the "decimal" column of the
// classic implicit numeric conversion table.
var Decimal = TypeOf[*big.Float]()

// nullableType wraps an underlying type and makes the absence value legal.
type nullableType struct {
	elem Type
}

func (t nullableType) String() string { return t.elem.String() + "?" }

func (t nullableType) Equal(other Type) bool {
	o, ok := other.(nullableType)
	return ok && o.elem.Equal(t.elem)
}

// placeholderType is an unbound generic type slot declared by a member. The
// constraint bounds which arguments may be bound to the slot; it defaults to
// Any.
type placeholderType struct {
	name       string
	constraint Type
}

func (t placeholderType) String() string {
	if t.constraint.Equal(Any) {
		return t.name
	}
	return fmt.Sprintf("%s:%s", t.name, t.constraint)
}

func (t placeholderType) Equal(other Type) bool {
	o, ok := other.(placeholderType)
	return ok && o.name == t.name && o.constraint.Equal(t.constraint)
}

// TypeOf returns the Type token for the compile-time type T.
func TypeOf[T any]() Type {
	return goType{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeFor wraps a reflect.Type in a Type token. A nil reflect.Type yields
// nil.
func TypeFor(rt reflect.Type) Type {
	if rt == nil {
		return nil
	}
	return goType{rt: rt}
}

// RuntimeTypeOf returns the Type token for the dynamic type of v. A nil
// value has no runtime type and yields nil; callers must handle the absence
// value before asking for its type.
func RuntimeTypeOf(v any) Type {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return nil
	}
	return goType{rt: rt}
}

// NullableOf wraps elem so that the absence value becomes legal for it.
// Wrapping an already reference-like or already wrapped type is permitted but
// has no additional effect on nullability.
func NullableOf(elem Type) Type {
	return nullableType{elem: elem}
}

// Generic declares a generic placeholder with the given slot name and
// constraint. A nil constraint means the slot is unconstrained (Any).
func Generic(name string, constraint Type) Type {
	if constraint == nil {
		constraint = Any
	}
	return placeholderType{name: name, constraint: constraint}
}

// IsPlaceholder reports whether t denotes an unbound generic type slot.
func IsPlaceholder(t Type) bool {
	_, ok := t.(placeholderType)
	return ok
}

// EffectiveType resolves a generic placeholder to its constraint; any other
// type resolves to itself.
func EffectiveType(t Type) Type {
	if p, ok := t.(placeholderType); ok {
		return p.constraint
	}
	return t
}

// NullableElem returns the underlying type of a Nullable wrapper. The second
// result is false when t is not a wrapper.
func NullableElem(t Type) (Type, bool) {
	n, ok := t.(nullableType)
	if !ok {
		return nil, false
	}
	return n.elem, true
}

// ReflectType exposes the reflect.Type behind a reflection-backed token. The
// second result is false for Any, Nullable wrappers and placeholders.
func ReflectType(t Type) (reflect.Type, bool) {
	g, ok := t.(goType)
	if !ok {
		return nil, false
	}
	return g.rt, true
}

// IsNil reports whether v is the absence value: either an untyped nil or a
// typed nil of a reference-like kind (pointer, interface, map, slice,
// channel, function).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
