package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/dynabind/core"
)

var (
	// ErrUnknownType is returned when a declaration references a type name
	// the table does not know.
	ErrUnknownType = errors.New("dynabind: unknown type name")

	// ErrDuplicateTypeName is returned when a name is registered twice.
	ErrDuplicateTypeName = errors.New("dynabind: type name already registered")

	// ErrEmptyTypeName is returned for a registration without a name.
	ErrEmptyTypeName = errors.New("dynabind: type name must not be empty")
)

// TypeTable maps declaration names to type tokens. The builtin scalar names
// are pre-registered; embedding applications register their own types before
// loading manifests. The table is meant to be populated at bind time and
// read-only afterwards.
type TypeTable struct {
	types map[string]core.Type
}

// NewTypeTable creates a table with the builtin names registered: any,
// string, bool, bytes, the sized integer and float kinds, int, uint and
// decimal.
func NewTypeTable() *TypeTable {
	t := &TypeTable{types: make(map[string]core.Type)}
	builtins := map[string]core.Type{
		"any":     core.Any,
		"string":  core.TypeOf[string](),
		"bool":    core.TypeOf[bool](),
		"bytes":   core.TypeOf[[]byte](),
		"int":     core.TypeOf[int](),
		"int8":    core.TypeOf[int8](),
		"int16":   core.TypeOf[int16](),
		"int32":   core.TypeOf[int32](),
		"int64":   core.TypeOf[int64](),
		"uint":    core.TypeOf[uint](),
		"uint8":   core.TypeOf[uint8](),
		"uint16":  core.TypeOf[uint16](),
		"uint32":  core.TypeOf[uint32](),
		"uint64":  core.TypeOf[uint64](),
		"float32": core.TypeOf[float32](),
		"float64": core.TypeOf[float64](),
		"decimal": core.Decimal,
	}
	for name, typ := range builtins {
		t.types[name] = typ
	}
	return t
}

// Register adds a custom name to the table.
func (t *TypeTable) Register(name string, typ core.Type) error {
	if name == "" {
		return ErrEmptyTypeName
	}
	if typ == nil {
		return fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	if _, ok := t.types[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTypeName, name)
	}
	t.types[name] = typ
	return nil
}

// Resolve looks a declaration name up, honoring a trailing '?' as a
// nullable wrapper.
func (t *TypeTable) Resolve(name string) (core.Type, error) {
	if base, ok := strings.CutSuffix(name, "?"); ok {
		elem, err := t.Resolve(base)
		if err != nil {
			return nil, err
		}
		return core.NullableOf(elem), nil
	}
	typ, ok := t.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return typ, nil
}
