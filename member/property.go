package member

import (
	"errors"

	"github.com/hupe1980/dynabind/core"
)

var (
	// ErrNoAccessors is returned when a property declares neither a getter
	// nor a setter.
	ErrNoAccessors = errors.New("dynabind: property needs a getter or a setter")

	// ErrNotWritable is returned when a setter candidate is invoked on a
	// read-only member.
	ErrNotWritable = errors.New("dynabind: member is not writable")

	// ErrNotReadable is returned when a getter candidate is invoked on a
	// write-only member.
	ErrNotReadable = errors.New("dynabind: member is not readable")
)

// GetterFunc reads a property value from the bound target.
type GetterFunc func(target any) (any, error)

// SetterFunc writes a property value on the bound target.
type SetterFunc func(target any, value any) error

// Property is the accessor-backed candidate variant. It expands into up to
// two candidates sharing the preferred name: a getter with zero parameters
// and a setter with one parameter of the property type. Arity-driven
// overload selection then picks between reading and writing:
//
//	obj.Invoke("Color")          // getter wins (zero arguments)
//	obj.Invoke("Color", "red")   // setter wins (one argument)
type Property struct {
	preferredName string
	typ           core.Type
	get           GetterFunc
	set           SetterFunc
}

// NewProperty declares a property with the given dispatch name and value
// type. Either accessor may be nil to declare a read-only or write-only
// property, but not both.
func NewProperty(preferredName string, typ core.Type, get GetterFunc, set SetterFunc) (*Property, error) {
	if preferredName == "" {
		return nil, ErrEmptyName
	}
	if typ == nil {
		return nil, ErrMissingParameterType
	}
	if get == nil && set == nil {
		return nil, ErrNoAccessors
	}
	return &Property{preferredName: preferredName, typ: typ, get: get, set: set}, nil
}

// Candidates expands the property into its getter/setter candidates.
func (p *Property) Candidates() []Candidate {
	var out []Candidate
	if p.get != nil {
		out = append(out, &propertyGetter{prop: p})
	}
	if p.set != nil {
		out = append(out, &propertySetter{prop: p})
	}
	return out
}

type propertyGetter struct {
	prop *Property
}

func (g *propertyGetter) PreferredName() string { return g.prop.preferredName }

func (g *propertyGetter) Signature() Signature {
	return MustSignature(g.prop.preferredName, 0)
}

func (g *propertyGetter) Invoke(target any, _ []core.Type, _ []any) (any, error) {
	return g.prop.get(target)
}

type propertySetter struct {
	prop *Property
}

func (s *propertySetter) PreferredName() string { return s.prop.preferredName }

func (s *propertySetter) Signature() Signature {
	return MustSignature(s.prop.preferredName, 0, Param(s.prop.typ))
}

func (s *propertySetter) Invoke(target any, _ []core.Type, args []any) (any, error) {
	if err := s.prop.set(target, args[0]); err != nil {
		return nil, err
	}
	return nil, nil
}
