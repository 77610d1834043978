package lite

import (
	"context"
	"sync"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ib-77/statusvalue/pkg/sv"
	"github.com/ib-77/statusvalue/pkg/sv/core"
	"github.com/ib-77/statusvalue/pkg/sv/solo"
)

var log = logging.Logger("sv/lite")

// Engine turns one input into at most one output. A channel closed without
// a value means the input was abandoned.
type Engine[In, Out any] func(ctx context.Context, input sv.Maybe[In]) <-chan sv.Maybe[Out]

func Run[T any](ctx context.Context, inputCh <-chan sv.Maybe[T], engine Engine[T, T], lines int) <-chan sv.Maybe[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout runs engine on lines workers and merges their outputs. The
// returned channel is closed once every worker has stopped.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan sv.Maybe[In], engine Engine[In, Out],
	lines int) <-chan sv.Maybe[Out] {

	out := make(chan sv.Maybe[Out])
	wg := &sync.WaitGroup{}

	if lines < 1 {
		lines = 1
	}

	handlers := drainHandlers[In, Out]()
	for range lines {
		wg.Add(1)
		go core.Locomotive[sv.Code, In, Out](ctx, inputCh, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// drainHandlers emit every input left behind by a cancellation as a failure
// carrying sv.Canceled, when process-remaining is enabled on the context.
// These sends block, so the output must be read until closed, which
// core.FromChanMany does under the same option.
func drainHandlers[In, Out any]() core.CancellationHandlers[sv.Code, In, Out] {
	return core.CancellationHandlers[sv.Code, In, Out]{
		OnCancel: func(ctx context.Context, inputCh <-chan sv.Maybe[In], outCh chan<- sv.Maybe[Out]) {
			if !core.IsProcessRemainingEnabled(ctx, false) {
				return
			}
			drained := 0
			for in := range inputCh {
				outCh <- canceled[In, Out](in)
				drained++
			}
			log.Debugf("drained %d remaining inputs after cancel: %v", drained, ctx.Err())
		},
		OnCancelUnprocessed: func(ctx context.Context, in sv.Maybe[In], outCh chan<- sv.Maybe[Out]) {
			if core.IsProcessRemainingEnabled(ctx, false) {
				outCh <- canceled[In, Out](in)
			}
		},
		OnCancelProcessed: func(ctx context.Context, in sv.Maybe[In], processed sv.Maybe[Out], outCh chan<- sv.Maybe[Out]) {
			if core.IsProcessRemainingEnabled(ctx, false) {
				outCh <- processed
			}
		},
	}
}

// canceled keeps an existing failure status and marks anything else Canceled.
func canceled[In, Out any](in sv.Maybe[In]) sv.Maybe[Out] {
	if !in.HasValue() {
		return sv.FailFrom[sv.Code, In, Out](in)
	}
	return sv.Failure[sv.Code, Out](sv.Canceled)
}

func lift[In, Out any](step func(ctx context.Context, in sv.Maybe[In]) sv.Maybe[Out]) Engine[In, Out] {
	return func(ctx context.Context, input sv.Maybe[In]) <-chan sv.Maybe[Out] {
		out := make(chan sv.Maybe[Out], 1)

		go func() {
			defer close(out)

			if ctx.Err() == nil {
				out <- step(ctx, input)
			}
		}()

		return out
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, failStatus sv.Code)) Engine[T, T] {
	return lift(func(ctx context.Context, in sv.Maybe[T]) sv.Maybe[T] {
		return solo.AndValidate(ctx, in, validate)
	})
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) sv.Maybe[Out]) Engine[In, Out] {
	return lift(func(ctx context.Context, in sv.Maybe[In]) sv.Maybe[Out] {
		return solo.Switch(ctx, in, switchOnSuccess)
	})
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return lift(func(ctx context.Context, in sv.Maybe[In]) sv.Maybe[Out] {
		return solo.Map(ctx, in, mapOnSuccess)
	})
}

// Try maps a returned error to its sv.Code.
func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return lift(func(ctx context.Context, in sv.Maybe[In]) sv.Maybe[Out] {
		return solo.TryCode(ctx, in, onTryExecute)
	})
}

func Tee[T any](sideEffect func(ctx context.Context, r sv.Maybe[T])) Engine[T, T] {
	return lift(func(ctx context.Context, in sv.Maybe[T]) sv.Maybe[T] {
		return solo.Tee(ctx, in, sideEffect)
	})
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, status sv.Code, r In) Out
	OnFailure func(ctx context.Context, status sv.Code) Out
}

// Finally reduces every input to Out. It stops at ctx cancellation; inputs
// still queued are then reduced through OnFailure with sv.Canceled when
// process-remaining is enabled.
func Finally[In, Out any](ctx context.Context, inputCh <-chan sv.Maybe[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				drainFinally(ctx, inputCh, handlers, out)
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnFailure)
				select {
				case <-ctx.Done():
					if core.IsProcessRemainingEnabled(ctx, false) {
						out <- handlers.OnFailure(ctx, canceled[In, In](in).Status())
					}
					drainFinally(ctx, inputCh, handlers, out)
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}

func drainFinally[In, Out any](ctx context.Context, inputCh <-chan sv.Maybe[In],
	handlers FinallyHandlers[In, Out], out chan<- Out) {
	if !core.IsProcessRemainingEnabled(ctx, false) {
		return
	}
	for in := range inputCh {
		out <- handlers.OnFailure(ctx, canceled[In, In](in).Status())
	}
}
