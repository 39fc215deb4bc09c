package scmlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuePredicatesAndAccessors(t *testing.T) {
	assert.True(t, NewInt(3).IsInt())
	assert.True(t, NewReal(3.5).IsReal())
	assert.True(t, NewInt(3).IsNumber())
	assert.True(t, NewBool(true).IsBool())
	assert.True(t, NewStr(`"hi"`).IsStr())
	assert.True(t, NewSymbol("x").IsSymbol())
	assert.True(t, NewNull().IsNull())
	assert.True(t, Cons(NewInt(1), NewNull()).IsPair())
	assert.True(t, NewVoid().IsVoid())
	assert.True(t, NewUnspecified().IsUnspecified())
}

func TestTruthyOnlyFalseIsBool(t *testing.T) {
	assert.False(t, NewBool(false).Truthy())
	assert.True(t, NewBool(true).Truthy())
	assert.True(t, NewInt(0).Truthy())
	assert.True(t, NewNull().Truthy())
	assert.True(t, NewStr(`""`).Truthy())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "42", FormatNumber(NewInt(42)))
	assert.Equal(t, "-7", FormatNumber(NewInt(-7)))
	assert.Equal(t, "3.500000", FormatNumber(NewReal(3.5)))
	assert.Equal(t, "3.000000", FormatNumber(NewReal(3.0)))
}

func TestAccessorPanicsOnTagMismatch(t *testing.T) {
	assert.Panics(t, func() { NewInt(1).Real() })
	assert.Panics(t, func() { NewReal(1).Int() })
	assert.Panics(t, func() { NewBool(true).Str() })
	assert.Panics(t, func() { NewNull().Pair() })
}

func TestSymbolEquals(t *testing.T) {
	s := NewSymbol("lambda")
	assert.True(t, s.SymbolEquals("lambda"))
	assert.False(t, s.SymbolEquals("define"))
	assert.False(t, NewInt(1).SymbolEquals("lambda"))
}
