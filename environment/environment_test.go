/*
File    : lox/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/loxlang/lox/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", object.Number{Value: 10})
	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, object.Number{Value: 10}, v)
}

func TestGet_UndefinedReturnsFalse(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestGet_WalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Define("x", object.Number{Value: 1})
	child := New(parent)
	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, object.Number{Value: 1}, v)
}

func TestDefine_ShadowsWithoutMutatingOuter(t *testing.T) {
	outer := New(nil)
	outer.Define("x", object.Number{Value: 1})
	inner := New(outer)
	inner.Define("x", object.Number{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, object.Number{Value: 2}, innerVal)
	assert.Equal(t, object.Number{Value: 1}, outerVal)
}

func TestAssign_UpdatesNearestAncestorBinding(t *testing.T) {
	outer := New(nil)
	outer.Define("x", object.Number{Value: 1})
	inner := New(outer)

	ok := inner.Assign("x", object.Number{Value: 99})
	require.True(t, ok)

	outerVal, _ := outer.Get("x")
	assert.Equal(t, object.Number{Value: 99}, outerVal)
}

func TestAssign_UndefinedReturnsFalse(t *testing.T) {
	env := New(nil)
	ok := env.Assign("neverDeclared", object.Nil{})
	assert.False(t, ok)
}

func TestAssign_DoesNotCreateNewOuterBinding(t *testing.T) {
	outer := New(nil)
	inner := New(outer)
	inner.Define("x", object.Number{Value: 5})

	// assigning in a sibling scope must not see inner's local binding
	sibling := New(outer)
	ok := sibling.Assign("x", object.Number{Value: 10})
	assert.False(t, ok)

	// and the failed assignment must not have introduced x in outer
	_, ok = outer.Get("x")
	assert.False(t, ok)
}

func TestSharedReferenceMutationVisibleToBothHolders(t *testing.T) {
	// Two "closures" holding the same *Environment must observe each
	// other's mutations — the semantic closures require (spec §3.5).
	shared := New(nil)
	shared.Define("n", object.Number{Value: 0})

	holderA := shared
	holderB := shared

	holderA.Assign("n", object.Number{Value: 1})
	v, _ := holderB.Get("n")
	assert.Equal(t, object.Number{Value: 1}, v)
}
