package chain

import (
	"context"

	"github.com/ib-77/statusvalue/pkg/sv"
	"github.com/ib-77/statusvalue/pkg/sv/solo"
)

// Chain wraps a sv.StatusValue with context to enable fluent chaining
type Chain[S comparable, V any] struct {
	ctx    context.Context
	result sv.StatusValue[S, V]
}

// Start creates a new chain from a sv.StatusValue
func Start[S comparable, V any](ctx context.Context, result sv.StatusValue[S, V]) *Chain[S, V] {
	return &Chain[S, V]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a status and a present value
func FromValue[S comparable, V any](ctx context.Context, status S, value V) *Chain[S, V] {
	return &Chain[S, V]{
		ctx:    ctx,
		result: sv.Success(status, value),
	}
}

// Result returns the underlying sv.StatusValue
func (c *Chain[S, V]) Result() sv.StatusValue[S, V] {
	return c.result
}

// Validate moves the chain to the failure track when validate rejects the value
func (c *Chain[S, V]) Validate(validate func(context.Context, V) (bool, S)) *Chain[S, V] {
	return &Chain[S, V]{
		ctx:    c.ctx,
		result: solo.AndValidate(c.ctx, c.result, validate),
	}
}

// Then chains a function that returns sv.StatusValue[S, U]
func Then[S comparable, V, U any](c *Chain[S, V], onSuccess func(context.Context, V) sv.StatusValue[S, U]) *Chain[S, U] {
	return &Chain[S, U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error), mapping the error to a status
func ThenTry[S comparable, V, U any](c *Chain[S, V], tryOnSuccess func(context.Context, V) (U, error),
	onError func(context.Context, error) S) *Chain[S, U] {
	return &Chain[S, U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess, onError),
	}
}

// Map chains a pure transformation function
func Map[S comparable, V, U any](c *Chain[S, V], onSuccess func(context.Context, V) U) *Chain[S, U] {
	return &Chain[S, U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[S, V]) Ensure(onSuccess func(context.Context, V)) *Chain[S, V] {
	return &Chain[S, V]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result sv.StatusValue[S, V]) {
				onSuccess(ctx, result.Value())
			}),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[S comparable, V, U any](c *Chain[S, V], onSuccess func(context.Context, S, V) U,
	onFailure func(context.Context, S) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
