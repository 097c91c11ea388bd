// Package pool recycles vectors so hot loops can reuse their backing arrays
// instead of allocating new ones.
package pool

import (
	"context"
	"errors"
	"fmt"

	"github.com/GearEightGames/PerformanceBooster/config"
	"github.com/GearEightGames/PerformanceBooster/datastruct/list"
	"github.com/GearEightGames/PerformanceBooster/datastruct/stack"
	"github.com/GearEightGames/PerformanceBooster/lib/logger"
	"github.com/GearEightGames/PerformanceBooster/lib/sync/atomic"
	pool "github.com/jolestar/go-commons-pool/v2"
)

var ErrPoolClosed = errors.New("pool closed")

type VectorPool[T any] struct {
	objects *pool.ObjectPool
	closed  atomic.Boolean
}

// NewVectorPool builds a pool from props, or from config.Properties when props is nil.
func NewVectorPool[T any](ctx context.Context, props *config.PoolProperties) *VectorPool[T] {
	if props == nil {
		props = config.Properties
	}
	cfg := pool.NewDefaultPoolConfig()
	cfg.MaxTotal = props.MaxTotal
	cfg.MaxIdle = props.MaxIdle
	cfg.MinIdle = props.MinIdle
	cfg.BlockWhenExhausted = props.BlockWhenExhausted
	cfg.TestOnReturn = props.MaxRetainedCapacity > 0
	factory := &vectorFactory[T]{
		initialCapacity:     props.InitialCapacity,
		maxRetainedCapacity: props.MaxRetainedCapacity,
	}
	return &VectorPool[T]{
		objects: pool.NewObjectPool(ctx, factory, cfg),
	}
}

// Borrow returns an empty vector. It must be handed back with Return.
func (p *VectorPool[T]) Borrow(ctx context.Context) (*list.Vector[T], error) {
	if p.closed.Get() {
		return nil, ErrPoolClosed
	}
	obj, err := p.objects.BorrowObject(ctx)
	if err != nil {
		// Close may have run between the check above and the borrow.
		if p.closed.Get() || p.objects.IsClosed() {
			return nil, ErrPoolClosed
		}
		return nil, fmt.Errorf("borrow vector: %w", err)
	}
	v, ok := obj.(*list.Vector[T])
	if !ok {
		return nil, errors.New("type mismatch")
	}
	return v, nil
}

// Return clears v and makes it available again. v must not be used afterwards.
func (p *VectorPool[T]) Return(ctx context.Context, v *list.Vector[T]) error {
	if v == nil {
		return errors.New("nil vector")
	}
	if err := p.objects.ReturnObject(ctx, v); err != nil {
		return fmt.Errorf("return vector: %w", err)
	}
	return nil
}

// BorrowStack returns an empty stack backed by a pooled vector.
func (p *VectorPool[T]) BorrowStack(ctx context.Context) (*stack.Stack[T], error) {
	v, err := p.Borrow(ctx)
	if err != nil {
		return nil, err
	}
	return stack.Of[T](v), nil
}

// ReturnStack hands back the vector of a stack obtained from BorrowStack.
func (p *VectorPool[T]) ReturnStack(ctx context.Context, s *stack.Stack[T]) error {
	v, ok := s.Sequence().(*list.Vector[T])
	if !ok {
		return errors.New("stack is not backed by a pooled vector")
	}
	return p.Return(ctx, v)
}

func (p *VectorPool[T]) Idle() int {
	return p.objects.GetNumIdle()
}

func (p *VectorPool[T]) Active() int {
	return p.objects.GetNumActive()
}

func (p *VectorPool[T]) Close(ctx context.Context) {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	p.objects.Close(ctx)
	logger.Info("vector pool closed")
}
