// Package list holds the growable-array Vector and the sequence operations that
// work on any indexable container with a length.
//
// None of the types or functions here are safe for concurrent use; callers sharing
// a sequence across goroutines must guard the whole sequence themselves.
package list

// Sequence is an ordered, indexable, mutable container with a length.
// Valid indices are [0, Size()).
type Sequence[T any] interface {
	Size() int
	Get(index int) T
	Set(index int, val T)
	Add(val T)
	// Remove deletes the element at index, keeping the order of the rest, and returns it.
	Remove(index int) T
}

// Predicate must be total over T.
type Predicate[T any] func(T) bool

// EqualsFunc reports whether an element is the one being looked up.
type EqualsFunc[T any] func(T) bool

var _ Sequence[int] = (*Vector[int])(nil)
