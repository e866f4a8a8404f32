/*
File    : lox/object/object_test.go
*/
package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Bool{Value: false}))
	assert.True(t, Truthy(Bool{Value: true}))
	assert.True(t, Truthy(Number{Value: 0}))
	assert.True(t, Truthy(String{Value: ""}))
}

func TestTruthy_DoubleNegationInvariant(t *testing.T) {
	values := []Value{Nil{}, Bool{true}, Bool{false}, Number{0}, Number{1}, String{""}, String{"x"}}
	for _, v := range values {
		not := Bool{Value: !Truthy(v)} // the value lox's unary '!' yields
		notNot := Bool{Value: !Truthy(not)}
		assert.Equal(t, Truthy(v), Truthy(notNot))
	}
}

func TestEqual_SameVariant(t *testing.T) {
	assert.True(t, Equal(Number{1}, Number{1}))
	assert.True(t, Equal(String{"a"}, String{"a"}))
	assert.True(t, Equal(Bool{true}, Bool{true}))
	assert.True(t, Equal(Nil{}, Nil{}))
}

func TestEqual_CrossVariantIsFalse(t *testing.T) {
	assert.False(t, Equal(Number{1}, String{"1"}))
	assert.False(t, Equal(Nil{}, Bool{false}))
}

func TestEqual_NaNIsNeverEqual(t *testing.T) {
	nan := Number{Value: math.NaN()}
	assert.False(t, Equal(nan, nan))
}

func TestNumberDisplay_IntegralHasNoTrailingZero(t *testing.T) {
	assert.Equal(t, "7", Number{Value: 7}.Display())
	assert.Equal(t, "-3", Number{Value: -3}.Display())
	assert.Equal(t, "0", Number{Value: 0}.Display())
}

func TestNumberDisplay_Fractional(t *testing.T) {
	assert.Equal(t, "3.5", Number{Value: 3.5}.Display())
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "1a", Concat(Number{1}, String{"a"}))
	assert.Equal(t, "a1", Concat(String{"a"}, Number{1}))
	assert.Equal(t, "hi there", Concat(String{"hi "}, String{"there"}))
}

func TestBuiltinFunction_Display(t *testing.T) {
	b := &BuiltinFunction{Name: "clock", Arity: 0}
	assert.Equal(t, "<built-in function clock>", b.Display())
}
