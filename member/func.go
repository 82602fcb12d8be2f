package member

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/internal/util"
)

var (
	// ErrNotAFunc is returned when Func is given something other than a Go
	// function.
	ErrNotAFunc = errors.New("dynabind: Func expects a non-nil Go function")

	// ErrBadReturnShape is returned for functions with more than one value
	// result; supported shapes are (), (T), (error) and (T, error).
	ErrBadReturnShape = errors.New("dynabind: unsupported return shape")

	// ErrArgumentCount is returned when a candidate is invoked with an
	// argument count its signature cannot bind. Dispatch never does this;
	// it guards direct Invoke calls.
	ErrArgumentCount = errors.New("dynabind: argument count does not match signature")
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Func adapts an ordinary Go function (or bound method value) into a
// candidate. The signature is derived from the function type: every
// parameter becomes a required parameter, a Go variadic tail becomes a
// variadic-tail parameter carrying its element type. The bound target is
// ignored at invocation time since the function already closes over its
// receiver.
//
// Supported result shapes are (), (T), (error) and (T, error). Arguments
// are coerced to the declared parameter types: identity and assignability
// pass through, registered implicit conversions and the numeric widening
// relation convert, nil binds to reference-like parameters. A variadic
// element that cannot be represented surfaces as
// *IncompatibleVariadicArgumentError, any other representation failure as
// *ArgumentError.
func Func(preferredName string, fn any) (Candidate, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, ErrNotAFunc
	}
	ft := rv.Type()

	if err := checkReturnShape(ft); err != nil {
		return nil, fmt.Errorf("%w: %s", err, ft)
	}

	params := make([]Parameter, 0, ft.NumIn())
	for i := 0; i < ft.NumIn(); i++ {
		if ft.IsVariadic() && i == ft.NumIn()-1 {
			params = append(params, VariadicParam(core.TypeFor(ft.In(i).Elem())))
			continue
		}
		params = append(params, Param(core.TypeFor(ft.In(i))))
	}

	sig, err := NewSignature(preferredName, 0, params...)
	if err != nil {
		return nil, err
	}

	return &funcCandidate{preferredName: preferredName, sig: sig, fn: rv}, nil
}

// MustFunc is Func for statically known functions; it panics on error.
func MustFunc(preferredName string, fn any) Candidate {
	c, err := Func(preferredName, fn)
	if err != nil {
		panic(err)
	}
	return c
}

func checkReturnShape(ft reflect.Type) error {
	switch ft.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if ft.Out(1) == errType {
			return nil
		}
		return ErrBadReturnShape
	default:
		return ErrBadReturnShape
	}
}

type funcCandidate struct {
	preferredName string
	sig           Signature
	fn            reflect.Value
}

func (c *funcCandidate) PreferredName() string { return c.preferredName }

func (c *funcCandidate) Signature() Signature { return c.sig }

func (c *funcCandidate) Invoke(_ any, _ []core.Type, args []any) (any, error) {
	ft := c.fn.Type()

	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}
	if len(args) < fixed || (len(args) > fixed && !ft.IsVariadic()) {
		return nil, fmt.Errorf("%w: %s got %d", ErrArgumentCount, c.sig, len(args))
	}

	in := make([]reflect.Value, 0, len(args))
	for i := 0; i < fixed; i++ {
		cv, err := util.Coerce(args[i], ft.In(i))
		if err != nil {
			return nil, &ArgumentError{Member: c.preferredName, Index: i, Value: args[i], Want: core.TypeFor(ft.In(i))}
		}
		in = append(in, cv)
	}
	if ft.IsVariadic() {
		elem := ft.In(ft.NumIn() - 1).Elem()
		for j, v := range args[fixed:] {
			cv, err := util.Coerce(v, elem)
			if err != nil {
				return nil, &IncompatibleVariadicArgumentError{
					Member:  c.preferredName,
					Index:   fixed + j,
					Value:   v,
					Element: core.TypeFor(elem),
				}
			}
			in = append(in, cv)
		}
	}

	out := c.fn.Call(in)
	return unpackResults(ft, out)
}

// unpackResults maps the reflect call results onto the (any, error) shape.
func unpackResults(ft reflect.Type, out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	last := out[len(out)-1]
	if ft.Out(ft.NumOut()-1) == errType {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}
