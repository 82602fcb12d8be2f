package util

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/hupe1980/dynabind/core"
	"github.com/stretchr/testify/assert"
)

func TestCoerce_Assignable(t *testing.T) {
	v, err := Coerce("x", reflect.TypeOf(""))
	assert.NoError(t, err)
	assert.Equal(t, "x", v.Interface())

	// Concrete value into an interface target.
	v, err = Coerce(5, reflect.TypeOf((*any)(nil)).Elem())
	assert.NoError(t, err)
	assert.Equal(t, 5, v.Interface())
}

func TestCoerce_Nil(t *testing.T) {
	v, err := Coerce(nil, reflect.TypeOf([]int(nil)))
	assert.NoError(t, err)
	assert.True(t, v.IsNil())

	_, err = Coerce(nil, reflect.TypeOf(0))
	assert.Error(t, err)
}

func TestCoerce_Widening(t *testing.T) {
	v, err := Coerce(int32(7), reflect.TypeOf(int64(0)))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), v.Interface())

	_, err = Coerce(int64(7), reflect.TypeOf(int32(0)))
	assert.Error(t, err)

	_, err = Coerce("7", reflect.TypeOf(0))
	assert.Error(t, err)
}

func TestCoerce_Decimal(t *testing.T) {
	v, err := Coerce(int8(3), reflect.TypeOf((*big.Float)(nil)))
	assert.NoError(t, err)
	f := v.Interface().(*big.Float)
	got, _ := f.Float64()
	assert.Equal(t, 3.0, got)
}

type fahrenheit struct{ Deg float64 }
type celsius struct{ Deg float64 }

func TestCoerce_RegisteredConversion(t *testing.T) {
	err := core.RegisterConversion(core.TypeOf[fahrenheit](), core.TypeOf[celsius](), func(v any) (any, error) {
		return celsius{Deg: (v.(fahrenheit).Deg - 32) * 5 / 9}, nil
	})
	assert.NoError(t, err)

	v, err := Coerce(fahrenheit{Deg: 212}, reflect.TypeOf(celsius{}))
	assert.NoError(t, err)
	assert.Equal(t, celsius{Deg: 100}, v.Interface())

	// Reverse direction was never registered.
	_, err = Coerce(celsius{Deg: 100}, reflect.TypeOf(fahrenheit{}))
	assert.Error(t, err)
}
