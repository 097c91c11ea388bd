package list

import "golang.org/x/exp/slices"

// Vector is the contiguous growable array backing most sequences.
// Any []T converts to it directly:
//
//	v := list.Vector[int](ints)
//	list.RemoveAtSwap[int](&v, 0)
type Vector[T any] []T

func NewVector[T any](capacity int) *Vector[T] {
	v := make(Vector[T], 0, capacity)
	return &v
}

func (v *Vector[T]) Size() int {
	return len(*v)
}

func (v *Vector[T]) Get(index int) T {
	return (*v)[index]
}

func (v *Vector[T]) Set(index int, val T) {
	(*v)[index] = val
}

func (v *Vector[T]) Add(val T) {
	*v = append(*v, val)
}

func (v *Vector[T]) Remove(index int) T {
	s := *v
	val := s[index]
	copy(s[index:], s[index+1:])
	var zero T
	s[len(s)-1] = zero
	*v = s[:len(s)-1]
	return val
}

// Values returns a copy of the elements in index order.
func (v *Vector[T]) Values() []T {
	return slices.Clone([]T(*v))
}

// Clear empties the vector but keeps its capacity.
func (v *Vector[T]) Clear() {
	s := *v
	var zero T
	for i := range s {
		s[i] = zero
	}
	*v = s[:0]
}

// Grow makes room for at least n more elements without another allocation.
func (v *Vector[T]) Grow(n int) {
	*v = slices.Grow(*v, n)
}

func (v *Vector[T]) Cap() int {
	return cap(*v)
}
