package manifest

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/member"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNilTypeTable is returned when Load is called without a table.
	ErrNilTypeTable = errors.New("dynabind: type table must not be nil")

	// ErrMissingImplementation is returned by Bind when a declared member
	// has no invoke closure.
	ErrMissingImplementation = errors.New("dynabind: no implementation for declared member")

	// ErrDuplicateMember is returned when two declarations share a
	// preferred name and an identical signature shape would be pointless
	// to register. Overloads (same name, different parameters) are fine.
	ErrDuplicateMember = errors.New("dynabind: duplicate member declaration")
)

// document is the raw YAML shape.
type document struct {
	Events  []string     `yaml:"events"`
	Members []memberDecl `yaml:"members"`
}

type memberDecl struct {
	Name        string            `yaml:"name"`
	As          string            `yaml:"as"`
	Generics    []string          `yaml:"generics"`
	Constraints map[string]string `yaml:"constraints"`
	Params      []paramDecl       `yaml:"params"`
}

type paramDecl struct {
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	Variadic bool   `yaml:"variadic"`
}

// Member is one resolved member declaration.
type Member struct {
	// PreferredName is the external dispatch name ("as" in YAML, default
	// the internal name).
	PreferredName string

	// Signature is the validated signature with all type names resolved.
	Signature member.Signature
}

// Manifest is a fully resolved contract description: the declared members
// and event names of one bindable object.
type Manifest struct {
	Members []Member
	Events  []string
}

// Load parses a YAML manifest and resolves every type reference through the
// table. Structural signature errors (variadic placement, unknown types,
// duplicate declarations) fail here, at bind time.
func Load(r io.Reader, table *TypeTable) (*Manifest, error) {
	if table == nil {
		return nil, ErrNilTypeTable
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dynabind: read manifest: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dynabind: parse manifest: %w", err)
	}

	m := &Manifest{Events: slices.Clone(doc.Events)}
	seen := make(map[string]struct{})
	for _, decl := range doc.Members {
		resolved, err := resolveMember(decl, table)
		if err != nil {
			return nil, err
		}
		key := resolved.PreferredName + "|" + resolved.Signature.String()
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMember, resolved.PreferredName)
		}
		seen[key] = struct{}{}
		m.Members = append(m.Members, resolved)
	}
	return m, nil
}

func resolveMember(decl memberDecl, table *TypeTable) (Member, error) {
	placeholders, err := resolvePlaceholders(decl, table)
	if err != nil {
		return Member{}, err
	}

	params := make([]member.Parameter, 0, len(decl.Params))
	for _, pd := range decl.Params {
		typ, ok := placeholders[pd.Type]
		if !ok {
			typ, err = table.Resolve(pd.Type)
			if err != nil {
				return Member{}, fmt.Errorf("member %s: %w", decl.Name, err)
			}
		}
		params = append(params, member.Parameter{Type: typ, Optional: pd.Optional, Variadic: pd.Variadic})
	}

	sig, err := member.NewSignature(decl.Name, len(decl.Generics), params...)
	if err != nil {
		return Member{}, err
	}

	preferred := decl.As
	if preferred == "" {
		preferred = decl.Name
	}
	return Member{PreferredName: preferred, Signature: sig}, nil
}

// resolvePlaceholders builds the placeholder tokens for the member's
// declared generic slot names, applying constraints where given.
func resolvePlaceholders(decl memberDecl, table *TypeTable) (map[string]core.Type, error) {
	placeholders := make(map[string]core.Type, len(decl.Generics))
	for _, name := range decl.Generics {
		var constraint core.Type
		if cname, ok := decl.Constraints[name]; ok {
			resolved, err := table.Resolve(cname)
			if err != nil {
				return nil, fmt.Errorf("member %s, generic %s: %w", decl.Name, name, err)
			}
			constraint = resolved
		}
		placeholders[name] = core.Generic(name, constraint)
	}
	return placeholders, nil
}

// Bind pairs the declared members with invoke closures, keyed by preferred
// name, and returns the dispatchable candidates. Every declared member must
// have an implementation. Overloads share one closure per preferred name;
// the closure sees the arguments exactly as dispatched.
func (m *Manifest) Bind(impls map[string]member.InvokeFunc) ([]member.Candidate, error) {
	candidates := make([]member.Candidate, 0, len(m.Members))
	for _, decl := range m.Members {
		fn, ok := impls[decl.PreferredName]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingImplementation, decl.PreferredName)
		}
		c, err := member.NewMethod(decl.PreferredName, decl.Signature, fn)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
