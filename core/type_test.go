package core

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeTokens_Identity(t *testing.T) {
	assert.True(t, TypeOf[int]().Equal(TypeOf[int]()))
	assert.False(t, TypeOf[int]().Equal(TypeOf[int64]()))
	assert.True(t, TypeOf[int]().Equal(RuntimeTypeOf(5)))
	assert.True(t, TypeOf[string]().Equal(TypeFor(reflect.TypeOf(""))))

	assert.True(t, Any.Equal(Any))
	assert.False(t, Any.Equal(TypeOf[any]()))

	assert.True(t, NullableOf(TypeOf[int]()).Equal(NullableOf(TypeOf[int]())))
	assert.False(t, NullableOf(TypeOf[int]()).Equal(TypeOf[int]()))
}

func TestRuntimeTypeOf_NilHasNoType(t *testing.T) {
	assert.Nil(t, RuntimeTypeOf(nil))
}

func TestGenericPlaceholders(t *testing.T) {
	unconstrained := Generic("T", nil)
	assert.True(t, IsPlaceholder(unconstrained))
	assert.True(t, EffectiveType(unconstrained).Equal(Any))

	constrained := Generic("T", TypeOf[float64]())
	assert.True(t, EffectiveType(constrained).Equal(TypeOf[float64]()))
	assert.False(t, IsPlaceholder(TypeOf[float64]()))
	assert.True(t, EffectiveType(TypeOf[int]()).Equal(TypeOf[int]()))

	// Same slot name, different constraints: distinct placeholders.
	assert.False(t, unconstrained.Equal(constrained))
}

func TestNullableElem(t *testing.T) {
	elem, ok := NullableElem(NullableOf(TypeOf[int]()))
	assert.True(t, ok)
	assert.True(t, elem.Equal(TypeOf[int]()))

	_, ok = NullableElem(TypeOf[int]())
	assert.False(t, ok)
}

func TestReflectType(t *testing.T) {
	rt, ok := ReflectType(TypeOf[string]())
	assert.True(t, ok)
	assert.Equal(t, reflect.String, rt.Kind())

	_, ok = ReflectType(Any)
	assert.False(t, ok)
	_, ok = ReflectType(NullableOf(TypeOf[int]()))
	assert.False(t, ok)
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))

	var p *int
	assert.True(t, IsNil(p)) // typed nil boxed in any

	var s []int
	assert.True(t, IsNil(s))

	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil(struct{}{}))
}
