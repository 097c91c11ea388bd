package atomic

import "sync/atomic"

type Boolean uint32

func (b *Boolean) Get() bool {
	return atomic.LoadUint32((*uint32)(b)) != 0
}

func (b *Boolean) Set(v bool) {
	atomic.StoreUint32((*uint32)(b), toUint32(v))
}

// CompareAndSwap reports whether the flag moved from old to new.
func (b *Boolean) CompareAndSwap(old, new bool) bool {
	return atomic.CompareAndSwapUint32((*uint32)(b), toUint32(old), toUint32(new))
}

func toUint32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
