package core

import (
	"context"

	"github.com/ib-77/statusvalue/pkg/sv"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanFromArgsValues emits every value as a success carrying status.
func ToChanFromArgsValues[S comparable, T any](ctx context.Context, status S, handlers ToChanHandlers[T],
	values ...T) <-chan sv.StatusValue[S, T] {
	in := make(chan sv.StatusValue[S, T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- sv.Success(status, v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs[T](ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

func ToChanManyValuesWithHandlers[S comparable, T any](ctx context.Context, status S, handlers ToChanHandlers[T],
	values []T) <-chan sv.StatusValue[S, T] {
	return ToChanFromArgsValues(ctx, status, handlers, values...)
}

func ToChanManyValues[S comparable, T any](ctx context.Context, status S, values []T) <-chan sv.StatusValue[S, T] {
	return ToChanFromArgsValues(ctx, status, ToChanHandlers[T]{}, values...)
}

// ToChanManyMaybe emits every value as sv.Some.
func ToChanManyMaybe[T any](ctx context.Context, values []T) <-chan sv.Maybe[T] {
	return ToChanManyValues(ctx, sv.OK, values)
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// FromChanMany collects out until it is closed. On cancellation it stops
// early, unless process-remaining is enabled: producers then still deliver
// their drained inputs, so it keeps reading until out is closed.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	if IsProcessRemainingEnabled(ctx, false) {
		for v := range out {
			res = append(res, v)
		}
		return res
	}

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
