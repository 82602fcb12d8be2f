package member

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/internal/util"
)

// Field is the reflection-backed candidate variant for an exported struct
// field of the bound target. Like Property it expands into a zero-parameter
// getter candidate and a one-parameter setter candidate under the same
// preferred name; writing requires the target to be an addressable struct
// pointer.
type Field struct {
	preferredName string
	goName        string
	typ           core.Type
}

// NewField declares field access under the given dispatch name. goName is
// the exported Go field name on the target struct; typ is the declared value
// type used for scoring.
func NewField(preferredName, goName string, typ core.Type) (*Field, error) {
	if preferredName == "" || goName == "" {
		return nil, ErrEmptyName
	}
	if typ == nil {
		return nil, ErrMissingParameterType
	}
	return &Field{preferredName: preferredName, goName: goName, typ: typ}, nil
}

// Candidates expands the field into its getter/setter candidates.
func (f *Field) Candidates() []Candidate {
	return []Candidate{&fieldGetter{field: f}, &fieldSetter{field: f}}
}

// lookup resolves the struct field on the target, dereferencing one pointer
// level.
func (f *Field) lookup(target any) (reflect.Value, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("dynabind: field %s: target %T is not a struct", f.preferredName, target)
	}
	fv := rv.FieldByName(f.goName)
	if !fv.IsValid() {
		return reflect.Value{}, fmt.Errorf("dynabind: field %s: no field %q on %T", f.preferredName, f.goName, target)
	}
	return fv, nil
}

type fieldGetter struct {
	field *Field
}

func (g *fieldGetter) PreferredName() string { return g.field.preferredName }

func (g *fieldGetter) Signature() Signature {
	return MustSignature(g.field.preferredName, 0)
}

func (g *fieldGetter) Invoke(target any, _ []core.Type, _ []any) (any, error) {
	fv, err := g.field.lookup(target)
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

type fieldSetter struct {
	field *Field
}

func (s *fieldSetter) PreferredName() string { return s.field.preferredName }

func (s *fieldSetter) Signature() Signature {
	return MustSignature(s.field.preferredName, 0, Param(s.field.typ))
}

func (s *fieldSetter) Invoke(target any, _ []core.Type, args []any) (any, error) {
	fv, err := s.field.lookup(target)
	if err != nil {
		return nil, err
	}
	if !fv.CanSet() {
		return nil, fmt.Errorf("dynabind: field %s: %w", s.field.preferredName, ErrNotWritable)
	}
	cv, err := util.Coerce(args[0], fv.Type())
	if err != nil {
		return nil, &ArgumentError{Member: s.field.preferredName, Index: 0, Value: args[0], Want: s.field.typ}
	}
	fv.Set(cv)
	return nil, nil
}
