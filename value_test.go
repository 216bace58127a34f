package ez

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthiness(t *testing.T) {
	assert.False(t, Nil.Truthy())
	assert.False(t, BoolVal(false).Truthy())
	assert.True(t, BoolVal(true).Truthy())
	assert.True(t, NumberVal(0).Truthy())
	assert.True(t, StringVal("").Truthy())
	assert.True(t, ArrayVal(nil).Truthy())
}

func TestEqualityStructuralForScalarsAndArrays(t *testing.T) {
	assert.True(t, Equal(NumberVal(1), NumberVal(1)))
	assert.True(t, Equal(StringVal("a"), StringVal("a")))
	assert.True(t, Equal(ArrayVal([]Value{NumberVal(1), NumberVal(2)}), ArrayVal([]Value{NumberVal(1), NumberVal(2)})))
	assert.False(t, Equal(ArrayVal([]Value{NumberVal(1)}), ArrayVal([]Value{NumberVal(2)})))
}

func TestEqualityReferenceForDicts(t *testing.T) {
	d1 := DictVal(map[string]Value{"a": NumberVal(1)})
	d2 := DictVal(map[string]Value{"a": NumberVal(1)})
	assert.False(t, Equal(d1, d2))
	assert.True(t, Equal(d1, d1))
}

func TestArrayMutationIsSharedAcrossHandles(t *testing.T) {
	a := ArrayVal([]Value{NumberVal(1)})
	b := a
	b.Array().Elements[0] = NumberVal(99)
	assert.Equal(t, 99.0, a.Array().Elements[0].Number())
}

func TestToDisplayStringFormatsIntegersWithoutDecimal(t *testing.T) {
	assert.Equal(t, "3", ToDisplayString(NumberVal(3)))
	assert.Equal(t, "3.5", ToDisplayString(NumberVal(3.5)))
	assert.Equal(t, "nil", ToDisplayString(Nil))
	assert.Equal(t, "true", ToDisplayString(BoolVal(true)))
}

func TestToDisplayStringArrayNestsQuotedStrings(t *testing.T) {
	v := ArrayVal([]Value{StringVal("hi"), NumberVal(1)})
	assert.Equal(t, `["hi", 1]`, ToDisplayString(v))
}
