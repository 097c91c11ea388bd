package list

import "github.com/GearEightGames/PerformanceBooster/lib/utils"

// Last returns the last element. ok is false when seq is empty.
func Last[T any](seq Sequence[T]) (val T, ok bool) {
	n := seq.Size()
	if n == 0 {
		return
	}
	return seq.Get(n - 1), true
}

// First returns the first element. ok is false when seq is empty.
func First[T any](seq Sequence[T]) (val T, ok bool) {
	if seq.Size() == 0 {
		return
	}
	return seq.Get(0), true
}

// LastOr returns the last element, or fallback when seq is empty.
func LastOr[T any](seq Sequence[T], fallback T) T {
	if val, ok := Last(seq); ok {
		return val
	}
	return fallback
}

// FirstOr returns the first element, or fallback when seq is empty.
func FirstOr[T any](seq Sequence[T], fallback T) T {
	if val, ok := First(seq); ok {
		return val
	}
	return fallback
}

func CountWhere[T any](seq Sequence[T], match Predicate[T]) int {
	n, res := seq.Size(), 0
	for i := 0; i < n; i++ {
		if match(seq.Get(i)) {
			res++
		}
	}
	return res
}

// IndexWhere returns the lowest index matching the predicate, or -1.
func IndexWhere[T any](seq Sequence[T], match Predicate[T]) int {
	n := seq.Size()
	for i := 0; i < n; i++ {
		if match(seq.Get(i)) {
			return i
		}
	}
	return -1
}

// FindFirst returns the lowest-indexed element matching the predicate.
func FindFirst[T any](seq Sequence[T], match Predicate[T]) (val T, ok bool) {
	i := IndexWhere(seq, match)
	if i < 0 {
		return
	}
	return seq.Get(i), true
}

// Swap exchanges the elements at i and j. Indices are not validated outside debug builds.
func Swap[T any](seq Sequence[T], i, j int) {
	n := seq.Size()
	assertIndex(i, n)
	assertIndex(j, n)
	a := seq.Get(i)
	seq.Set(i, seq.Get(j))
	seq.Set(j, a)
}

// RemoveSwap removes the first element equal to val by moving the last element
// into its slot. Order is not preserved. Reports whether val was found.
func RemoveSwap[T comparable](seq Sequence[T], val T) bool {
	return RemoveSwapFunc(seq, EqualsFunc[T](utils.EqualTo(val)))
}

// RemoveSwapFunc is RemoveSwap with a caller-supplied equality.
func RemoveSwapFunc[T any](seq Sequence[T], equals EqualsFunc[T]) bool {
	i := IndexWhere(seq, Predicate[T](equals))
	if i < 0 {
		return false
	}
	RemoveAtSwap(seq, i)
	return true
}

// RemoveAtSwap removes the element at index in O(1) by swapping it with the last
// element and dropping the tail. Order is not preserved. A no-op on an empty
// sequence; index is otherwise not validated outside debug builds.
func RemoveAtSwap[T any](seq Sequence[T], index int) {
	n := seq.Size()
	if n == 0 {
		return
	}
	assertIndex(index, n)
	if index != n-1 {
		Swap(seq, index, n-1)
	}
	RemoveLast(seq)
}

// RemoveLast drops the final element. Reports false when seq was already empty.
func RemoveLast[T any](seq Sequence[T]) bool {
	n := seq.Size()
	if n == 0 {
		return false
	}
	seq.Remove(n - 1)
	return true
}
