package scmlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindAndLookup(t *testing.T) {
	f := NewFrame(nil)
	f.Bind("x", NewInt(10))
	assert.Equal(t, int64(10), f.Lookup("x").Int())
}

func TestLookupWalksToOuterFrame(t *testing.T) {
	outer := NewFrame(nil)
	outer.Bind("x", NewInt(1))
	inner := NewFrame(outer)
	assert.Equal(t, int64(1), inner.Lookup("x").Int())
}

func TestLookupUnboundFails(t *testing.T) {
	f := NewFrame(nil)
	assert.PanicsWithValue(t, &EvalError{Kind: UnboundSymbol, Msg: "unbound symbol: y"}, func() { f.Lookup("y") })
}

func TestLookupSkipsUnspecifiedBinding(t *testing.T) {
	outer := NewFrame(nil)
	outer.Bind("x", NewInt(99))
	inner := NewFrame(outer)
	inner.Bind("x", NewUnspecified())
	// the inner frame's placeholder must not shadow the outer real value
	assert.Equal(t, int64(99), inner.Lookup("x").Int())
}

func TestAssignFindsAndReplacesInOuterFrame(t *testing.T) {
	outer := NewFrame(nil)
	outer.Bind("x", NewInt(1))
	inner := NewFrame(outer)
	inner.Assign("x", NewInt(2))
	assert.Equal(t, int64(2), outer.Lookup("x").Int())
}

func TestAssignUnboundFails(t *testing.T) {
	f := NewFrame(nil)
	assert.Panics(t, func() { f.Assign("z", NewInt(1)) })
}

func TestGlobalWalksToRoot(t *testing.T) {
	root := NewFrame(nil)
	mid := NewFrame(root)
	leaf := NewFrame(mid)
	assert.Same(t, root, leaf.Global())
}
