package core

import (
	"errors"
	"reflect"
	"sync"
)

// ErrNilConversionType is returned when a conversion is registered with a
// missing source or target type.
var ErrNilConversionType = errors.New("dynabind: conversion types must not be nil")

// ConvertFunc executes a registered implicit conversion at invocation time.
// It receives a value of the registered source type and returns the converted
// value.
type ConvertFunc func(v any) (any, error)

// conversionKey identifies one registered implicit conversion.
type conversionKey struct {
	src Type
	dst Type
}

// conversions is the registry of user-defined implicit conversions. It is
// the Go replacement for user-defined implicit conversion operators:
// embedding applications register the pairs (and optionally an executable
// converter) explicitly at bind time.
var conversions = struct {
	sync.RWMutex
	table map[conversionKey]ConvertFunc
}{table: make(map[conversionKey]ConvertFunc)}

// RegisterConversion declares that a value of src may be used where dst is
// declared. The convert function is used by the execution layer to produce
// the target representation; it may be nil when only the compatibility
// decision matters (for example when the receiving member accepts the source
// representation as-is).
//
// Registration is intended for bind time, before any dispatch runs;
// concurrent registration is nevertheless safe.
func RegisterConversion(src, dst Type, convert ConvertFunc) error {
	if src == nil || dst == nil {
		return ErrNilConversionType
	}
	conversions.Lock()
	defer conversions.Unlock()
	conversions.table[conversionKey{src: src, dst: dst}] = convert
	return nil
}

// LookupConversion returns the registered converter for the pair, if any.
// The boolean reports whether the pair is registered at all; the ConvertFunc
// may be nil even for a registered pair.
func LookupConversion(src, dst Type) (ConvertFunc, bool) {
	conversions.RLock()
	defer conversions.RUnlock()
	fn, ok := conversions.table[conversionKey{src: src, dst: dst}]
	return fn, ok
}

// conversionRegistered reports whether the pair was explicitly registered.
func conversionRegistered(src, dst Type) bool {
	_, ok := LookupConversion(src, dst)
	return ok
}

// IsNullable reports whether the absence value is legal for t: true for the
// top type, for explicit Nullable wrappers, for reference-like Go kinds and
// for placeholders whose constraint is nullable; false for plain value
// types.
func IsNullable(t Type) bool {
	switch tt := t.(type) {
	case nil:
		return false
	case anyType:
		return true
	case nullableType:
		return true
	case placeholderType:
		return IsNullable(tt.constraint)
	case goType:
		switch tt.rt.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// CanConvert reports whether a value of src may be used where dst is
// declared. The decision cascade, in order:
//
//  1. dst is the top type: always true.
//  2. src is-a dst (identity, assignability, interface implementation).
//  3. The pair was explicitly registered as an implicit conversion.
//  4. Both are numeric primitive kinds and src appears in the widening table
//     for dst (or dst is Decimal).
//  5. dst is a Nullable wrapper of U: recurse with (src, U).
//
// A placeholder dst is resolved to its constraint first. The oracle only
// decides compatibility; it never converts representations.
func CanConvert(src, dst Type) bool {
	if src == nil || dst == nil {
		return false
	}
	dst = EffectiveType(dst)

	if dst.Equal(Any) {
		return true
	}

	if src.Equal(dst) {
		return true
	}
	if isA(src, dst) {
		return true
	}

	if conversionRegistered(src, dst) {
		return true
	}

	if widensTo(src, dst) {
		return true
	}

	if elem, ok := NullableElem(dst); ok {
		return CanConvert(src, elem)
	}

	return false
}

// isA reports the subtype/assignability relationship between two
// reflection-backed tokens.
func isA(src, dst Type) bool {
	srcRT, ok := ReflectType(src)
	if !ok {
		return false
	}
	dstRT, ok := ReflectType(dst)
	if !ok {
		return false
	}
	return srcRT.AssignableTo(dstRT)
}

// widensTo applies the closed numeric widening relation, including the
// Decimal column.
func widensTo(src, dst Type) bool {
	srcRT, ok := ReflectType(src)
	if !ok {
		return false
	}
	if !isNumericKind(srcRT.Kind()) {
		return false
	}
	if dst.Equal(Decimal) {
		return true
	}
	dstRT, ok := ReflectType(dst)
	if !ok {
		return false
	}
	return Widens(srcRT.Kind(), dstRT.Kind())
}
