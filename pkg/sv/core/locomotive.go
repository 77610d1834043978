package core

import (
	"context"
	"sync"

	"github.com/ib-77/statusvalue/pkg/sv"
)

type CancellationHandlers[S comparable, In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan sv.StatusValue[S, In], outCh chan<- sv.StatusValue[S, Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed sv.StatusValue[S, In], outCh chan<- sv.StatusValue[S, Out])
	OnCancelProcessed   func(ctx context.Context, in sv.StatusValue[S, In], processed sv.StatusValue[S, Out],
		outCh chan<- sv.StatusValue[S, Out])
}

func (h CancellationHandlers[S, In, Out]) cancel(ctx context.Context, inputCh <-chan sv.StatusValue[S, In],
	outCh chan<- sv.StatusValue[S, Out]) {
	if h.OnCancel != nil {
		h.OnCancel(ctx, inputCh, outCh)
	}
}

func (h CancellationHandlers[S, In, Out]) cancelUnprocessed(ctx context.Context, in sv.StatusValue[S, In],
	outCh chan<- sv.StatusValue[S, Out]) {
	if h.OnCancelUnprocessed != nil {
		h.OnCancelUnprocessed(ctx, in, outCh)
	}
}

// Locomotive pulls inputs, runs engine on each and pushes the outcome to
// outCh until inputCh is closed or ctx is done. An engine channel closed
// without a value counts as canceled. wg.Done is called on return.
func Locomotive[S comparable, In, Out any](ctx context.Context, inputCh <-chan sv.StatusValue[S, In],
	outCh chan<- sv.StatusValue[S, Out],
	engine func(ctx context.Context, input sv.StatusValue[S, In]) <-chan sv.StatusValue[S, Out],
	handlers CancellationHandlers[S, In, Out],
	onSuccess func(ctx context.Context, out sv.StatusValue[S, Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			handlers.cancel(ctx, inputCh, outCh)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				handlers.cancelUnprocessed(ctx, in, outCh)
				handlers.cancel(ctx, inputCh, outCh)
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					handlers.cancelUnprocessed(ctx, in, outCh)
					handlers.cancel(ctx, inputCh, outCh)
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					handlers.cancel(ctx, inputCh, outCh)
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
