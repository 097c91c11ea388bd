package list

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index out of range")

func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, size)
	}
	return nil
}

// SwapChecked is Swap returning ErrIndexOutOfRange instead of faulting.
func SwapChecked[T any](seq Sequence[T], i, j int) error {
	n := seq.Size()
	if err := checkIndex(i, n); err != nil {
		return err
	}
	if err := checkIndex(j, n); err != nil {
		return err
	}
	Swap(seq, i, j)
	return nil
}

// RemoveAtSwapChecked is RemoveAtSwap returning ErrIndexOutOfRange instead of
// faulting. Every index is out of range for an empty sequence.
func RemoveAtSwapChecked[T any](seq Sequence[T], index int) error {
	if err := checkIndex(index, seq.Size()); err != nil {
		return err
	}
	RemoveAtSwap(seq, index)
	return nil
}
