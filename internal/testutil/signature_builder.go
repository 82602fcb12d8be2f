package testutil

import (
	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/member"
)

// SignatureBuilder provides a fluent helper for constructing signatures in
// tests. Example:
//
//	sig := NewSignatureBuilder("Add").Param(core.TypeOf[int]()).Variadic(core.TypeOf[string]()).Build()
//
// Chain only the parts you need; Build panics on structural errors since
// tests declare signatures statically.
type SignatureBuilder struct {
	name     string
	generics int
	params   []member.Parameter
}

// NewSignatureBuilder creates a builder for the given member name.
func NewSignatureBuilder(name string) *SignatureBuilder {
	return &SignatureBuilder{name: name}
}

// Generics sets the generic slot count (chainable).
func (b *SignatureBuilder) Generics(n int) *SignatureBuilder {
	b.generics = n
	return b
}

// Param appends a required parameter (chainable).
func (b *SignatureBuilder) Param(t core.Type) *SignatureBuilder {
	b.params = append(b.params, member.Param(t))
	return b
}

// Optional appends an optional parameter (chainable).
func (b *SignatureBuilder) Optional(t core.Type) *SignatureBuilder {
	b.params = append(b.params, member.OptionalParam(t))
	return b
}

// Variadic appends the variadic tail with the given element type (chainable).
func (b *SignatureBuilder) Variadic(elem core.Type) *SignatureBuilder {
	b.params = append(b.params, member.VariadicParam(elem))
	return b
}

// Build constructs the signature.
func (b *SignatureBuilder) Build() member.Signature {
	return member.MustSignature(b.name, b.generics, b.params...)
}
