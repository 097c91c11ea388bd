package list

// BetterList is a Vector with the sequence operations attached as methods.
type BetterList[T comparable] struct {
	Vector[T]
}

func NewBetterList[T comparable](vals ...T) *BetterList[T] {
	l := &BetterList[T]{Vector: make(Vector[T], 0, len(vals))}
	l.Vector = append(l.Vector, vals...)
	return l
}

func (l *BetterList[T]) Last() (T, bool) {
	return Last[T](l)
}

func (l *BetterList[T]) First() (T, bool) {
	return First[T](l)
}

func (l *BetterList[T]) LastOr(fallback T) T {
	return LastOr[T](l, fallback)
}

func (l *BetterList[T]) FirstOr(fallback T) T {
	return FirstOr[T](l, fallback)
}

func (l *BetterList[T]) CountWhere(match Predicate[T]) int {
	return CountWhere[T](l, match)
}

func (l *BetterList[T]) FindFirst(match Predicate[T]) (T, bool) {
	return FindFirst[T](l, match)
}

func (l *BetterList[T]) Swap(i, j int) {
	Swap[T](l, i, j)
}

func (l *BetterList[T]) SwapChecked(i, j int) error {
	return SwapChecked[T](l, i, j)
}

func (l *BetterList[T]) RemoveSwap(val T) bool {
	return RemoveSwap[T](l, val)
}

func (l *BetterList[T]) RemoveAtSwap(index int) {
	RemoveAtSwap[T](l, index)
}

func (l *BetterList[T]) RemoveAtSwapChecked(index int) error {
	return RemoveAtSwapChecked[T](l, index)
}

func (l *BetterList[T]) RemoveLast() bool {
	return RemoveLast[T](l)
}
