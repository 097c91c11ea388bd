// Package stack provides a LIFO view over a list.Sequence. The stack keeps no
// storage of its own: the top is the last element of the backing sequence.
package stack

import "github.com/GearEightGames/PerformanceBooster/datastruct/list"

// Stack's zero value is an empty stack backed by a vector allocated on first use.
type Stack[T any] struct {
	seq list.Sequence[T]
}

// New returns an empty stack backed by a fresh vector.
func New[T any]() *Stack[T] {
	return &Stack[T]{seq: list.NewVector[T](0)}
}

// Of returns a stack over seq; its last element is the top.
func Of[T any](seq list.Sequence[T]) *Stack[T] {
	if seq == nil {
		panic("stack: nil sequence")
	}
	return &Stack[T]{seq: seq}
}

func (s *Stack[T]) Push(val T) {
	s.sequence().Add(val)
}

// Pop removes and returns the top. ok is false when the stack was empty.
func (s *Stack[T]) Pop() (val T, ok bool) {
	seq := s.sequence()
	val, ok = list.Last(seq)
	if ok {
		list.RemoveLast(seq)
	}
	return
}

// Peek returns the top without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return list.Last(s.sequence())
}

func (s *Stack[T]) Size() int {
	return s.sequence().Size()
}

func (s *Stack[T]) Empty() bool {
	return s.sequence().Size() == 0
}

// Sequence exposes the backing sequence, bottom first.
func (s *Stack[T]) Sequence() list.Sequence[T] {
	return s.sequence()
}

func (s *Stack[T]) sequence() list.Sequence[T] {
	if s.seq == nil {
		s.seq = list.NewVector[T](0)
	}
	return s.seq
}
