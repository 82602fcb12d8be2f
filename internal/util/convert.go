// Package util contains internal value coercion helpers shared by the
// reflection-backed candidate variants. They are not intended for public
// consumption.
package util

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/hupe1980/dynabind/core"
)

var bigFloatType = reflect.TypeOf((*big.Float)(nil))

// Coerce produces a reflect.Value of type rt from the loosely typed call
// argument v. It applies, in order: the absence value (zero value for
// reference-like targets), assignability, a registered implicit conversion,
// the numeric widening relation (including the Decimal column). Anything
// else is a representation failure.
func Coerce(v any, rt reflect.Type) (reflect.Value, error) {
	if core.IsNil(v) {
		switch rt.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return reflect.Zero(rt), nil
		default:
			return reflect.Value{}, fmt.Errorf("cannot use nil as %s", rt)
		}
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(rt) {
		return rv, nil
	}

	if fn, ok := core.LookupConversion(core.TypeFor(rv.Type()), core.TypeFor(rt)); ok && fn != nil {
		converted, err := fn(v)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("implicit conversion %s -> %s: %w", rv.Type(), rt, err)
		}
		cv := reflect.ValueOf(converted)
		if !cv.Type().AssignableTo(rt) {
			return reflect.Value{}, fmt.Errorf("implicit conversion %s -> %s produced %T", rv.Type(), rt, converted)
		}
		return cv, nil
	}

	if rt == bigFloatType && rv.Type().ConvertibleTo(reflect.TypeOf(float64(0))) {
		f := rv.Convert(reflect.TypeOf(float64(0))).Float()
		return reflect.ValueOf(big.NewFloat(f)), nil
	}

	if core.Widens(rv.Kind(), rt.Kind()) && rv.Type().ConvertibleTo(rt) {
		return rv.Convert(rt), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", rv.Type(), rt)
}
