package pool

import (
	"context"
	"errors"

	"github.com/GearEightGames/PerformanceBooster/datastruct/list"
	"github.com/GearEightGames/PerformanceBooster/lib/logger"
	pool "github.com/jolestar/go-commons-pool/v2"
)

type vectorFactory[T any] struct {
	initialCapacity     int
	maxRetainedCapacity int
}

func (f *vectorFactory[T]) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	v := list.NewVector[T](f.initialCapacity)
	logger.Debugf("vector created with capacity %d", v.Cap())
	return pool.NewPooledObject(v), nil
}

func (f *vectorFactory[T]) DestroyObject(_ context.Context, obj *pool.PooledObject) error {
	v, ok := obj.Object.(*list.Vector[T])
	if !ok {
		return errors.New("type mismatch")
	}
	logger.Debugf("vector with capacity %d released", v.Cap())
	return nil
}

// ValidateObject rejects vectors that grew past the retained capacity so the
// pool does not pin large arrays.
func (f *vectorFactory[T]) ValidateObject(_ context.Context, obj *pool.PooledObject) bool {
	v, ok := obj.Object.(*list.Vector[T])
	if !ok {
		return false
	}
	if f.maxRetainedCapacity > 0 && v.Cap() > f.maxRetainedCapacity {
		logger.Warnf("vector capacity %d exceeds %d, dropping it", v.Cap(), f.maxRetainedCapacity)
		return false
	}
	return true
}

func (f *vectorFactory[T]) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

func (f *vectorFactory[T]) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	v, ok := obj.Object.(*list.Vector[T])
	if !ok {
		return errors.New("type mismatch")
	}
	v.Clear()
	return nil
}
