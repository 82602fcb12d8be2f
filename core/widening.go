package core

import "reflect"

// wideningTable is the closed implicit numeric widening relation. It mirrors
// the implicit numeric conversion tables of mainstream statically typed
// languages: signed chains widen to longer signed kinds and the floating
// kinds, unsigned kinds additionally widen to wider unsigned kinds.
//
// This is a finite relation, not a promotion algorithm; a pair is implicitly
// convertible iff it appears here. Every numeric kind additionally widens to
// Decimal, which is handled separately because *big.Float is a composite
// type, not a kind.
var wideningTable = map[reflect.Kind][]reflect.Kind{
	reflect.Int8:    {reflect.Int16, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64},
	reflect.Uint8:   {reflect.Int16, reflect.Uint16, reflect.Int32, reflect.Uint32, reflect.Int64, reflect.Uint64, reflect.Float32, reflect.Float64},
	reflect.Int16:   {reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64},
	reflect.Uint16:  {reflect.Int32, reflect.Uint32, reflect.Int64, reflect.Uint64, reflect.Float32, reflect.Float64},
	reflect.Int32:   {reflect.Int64, reflect.Float32, reflect.Float64},
	reflect.Uint32:  {reflect.Int64, reflect.Uint64, reflect.Float32, reflect.Float64},
	reflect.Int64:   {reflect.Float32, reflect.Float64},
	reflect.Uint64:  {reflect.Float32, reflect.Float64},
	reflect.Float32: {reflect.Float64},
}

// widening is the table above flattened into a set for O(1) lookups.
var widening = func() map[[2]reflect.Kind]struct{} {
	set := make(map[[2]reflect.Kind]struct{})
	for src, dsts := range wideningTable {
		for _, dst := range dsts {
			set[[2]reflect.Kind{src, dst}] = struct{}{}
		}
	}
	return set
}()

// normalizeKind folds the platform-sized kinds onto their 64-bit
// counterparts so the widening table stays closed.
func normalizeKind(k reflect.Kind) reflect.Kind {
	switch k {
	case reflect.Int:
		return reflect.Int64
	case reflect.Uint, reflect.Uintptr:
		return reflect.Uint64
	default:
		return k
	}
}

// isNumericKind reports whether k is one of the numeric primitive kinds
// covered by the widening relation.
func isNumericKind(k reflect.Kind) bool {
	switch normalizeKind(k) {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Widens reports whether a value of kind src implicitly widens to kind dst.
// Identity is not widening; Widens(k, k) is false.
func Widens(src, dst reflect.Kind) bool {
	_, ok := widening[[2]reflect.Kind{normalizeKind(src), normalizeKind(dst)}]
	return ok
}
