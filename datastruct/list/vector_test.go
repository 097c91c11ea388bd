package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	v := NewVector[string](4)
	assert.Zero(t, v.Size())
	assert.Equal(t, 4, v.Cap())

	v.Add("a")
	v.Add("b")
	v.Add("c")
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, "b", v.Get(1))

	v.Set(1, "B")
	assert.Equal(t, []string{"a", "B", "c"}, v.Values())

	assert.Equal(t, "a", v.Remove(0))
	assert.Equal(t, []string{"B", "c"}, v.Values())
}

func TestVectorRemoveZeroesVacatedSlot(t *testing.T) {
	a, b := new(int), new(int)
	v := Vector[*int]{a, b}
	v.Remove(0)
	assert.Equal(t, []*int{b}, v.Values())
	assert.Nil(t, v[:2][1])
}

func TestVectorValuesIsCopy(t *testing.T) {
	v := Vector[int]{1, 2}
	vals := v.Values()
	vals[0] = 100
	assert.Equal(t, 1, v.Get(0))
}

func TestVectorClearKeepsCapacity(t *testing.T) {
	v := NewVector[int](8)
	v.Add(1)
	v.Add(2)
	v.Clear()
	assert.Zero(t, v.Size())
	assert.Equal(t, 8, v.Cap())
	assert.Equal(t, []int{0, 0}, []int((*v)[:2]))
}

func TestVectorGrow(t *testing.T) {
	var v Vector[int]
	v.Grow(10)
	assert.Zero(t, v.Size())
	assert.GreaterOrEqual(t, v.Cap(), 10)
}

func TestSliceConversion(t *testing.T) {
	ints := []int{10, 20, 30, 40}
	v := Vector[int](ints)
	RemoveAtSwap[int](&v, 1)
	assert.Equal(t, []int{10, 40, 30}, []int(v))
}
