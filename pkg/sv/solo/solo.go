package solo

import (
	"context"

	"github.com/ib-77/statusvalue/pkg/sv"
)

func Succeed[S comparable, T any](status S, input T) sv.StatusValue[S, T] {
	return sv.Success(status, input)
}

func Fail[S comparable, T any](status S) sv.StatusValue[S, T] {
	return sv.Failure[S, T](status)
}

func Validate[S comparable, T any](ctx context.Context, status S, input T,
	validate func(ctx context.Context, in T) (valid bool, failStatus S)) sv.StatusValue[S, T] {
	return AndValidate(ctx, Succeed(status, input), validate)
}

func AndValidate[S comparable, T any](ctx context.Context, input sv.StatusValue[S, T],
	validate func(ctx context.Context, in T) (valid bool, failStatus S)) sv.StatusValue[S, T] {

	if input.HasValue() {
		if isValid, failStatus := validate(ctx, input.Value()); !isValid {
			return sv.Failure[S, T](failStatus)
		}
	}
	return input
}

// ValidateAll runs validators in order and stops at the first one that
// rejects the value.
func ValidateAll[S comparable, T any](ctx context.Context, input sv.StatusValue[S, T],
	validators ...func(ctx context.Context, in T) (valid bool, failStatus S)) sv.StatusValue[S, T] {

	for _, validate := range validators {
		if !input.HasValue() || ctx.Err() != nil {
			return input
		}
		input = AndValidate(ctx, input, validate)
	}
	return input
}

func Switch[S comparable, In, Out any](ctx context.Context,
	input sv.StatusValue[S, In],
	onSuccess func(ctx context.Context, r In) sv.StatusValue[S, Out]) sv.StatusValue[S, Out] {

	if input.HasValue() {
		return onSuccess(ctx, input.Value())
	}
	return sv.FailFrom[S, In, Out](input)
}

// Map transforms the value and keeps the status.
func Map[S comparable, In, Out any](ctx context.Context,
	input sv.StatusValue[S, In],
	onSuccess func(ctx context.Context, r In) Out) sv.StatusValue[S, Out] {

	if input.HasValue() {
		return sv.Success(input.Status(), onSuccess(ctx, input.Value()))
	}
	return sv.FailFrom[S, In, Out](input)
}

// Try calls onTryExecute and turns a returned error into a failure whose
// status is chosen by onError.
func Try[S comparable, In, Out any](ctx context.Context, input sv.StatusValue[S, In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onError func(ctx context.Context, err error) S) sv.StatusValue[S, Out] {

	if input.HasValue() {
		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return sv.Failure[S, Out](onError(ctx, err))
		}
		return sv.Success(input.Status(), out)
	}
	return sv.FailFrom[S, In, Out](input)
}

// TryCode is Try for Code statuses, mapping errors with sv.CodeOf.
func TryCode[In, Out any](ctx context.Context, input sv.Maybe[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) sv.Maybe[Out] {
	return Try(ctx, input, onTryExecute, func(_ context.Context, err error) sv.Code {
		return sv.CodeOf(err)
	})
}

func FailOnError[S comparable, T any](ctx context.Context, input sv.StatusValue[S, T],
	maybeErr func(ctx context.Context, in T) error,
	onError func(ctx context.Context, err error) S) sv.StatusValue[S, T] {

	if input.HasValue() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return sv.Failure[S, T](onError(ctx, err))
		}
	}
	return input
}

func Tee[S comparable, T any](ctx context.Context,
	input sv.StatusValue[S, T],
	onSuccess func(ctx context.Context, r sv.StatusValue[S, T])) sv.StatusValue[S, T] {

	if input.HasValue() {
		onSuccess(ctx, input)
	}
	return input
}

func TeeIf[S comparable, T any](ctx context.Context,
	input sv.StatusValue[S, T],
	condition func(ctx context.Context, r sv.StatusValue[S, T]) bool,
	onSuccessAndCondition func(ctx context.Context, r sv.StatusValue[S, T])) sv.StatusValue[S, T] {

	if input.HasValue() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}
	return input
}

func DoubleTee[S comparable, T any](ctx context.Context, input sv.StatusValue[S, T],
	onSuccess func(ctx context.Context, status S, r T),
	onFailure func(ctx context.Context, status S)) sv.StatusValue[S, T] {

	if input.HasValue() {
		onSuccess(ctx, input.Status(), input.Value())
	} else {
		onFailure(ctx, input.Status())
	}
	return input
}

// DoubleMap maps the value on success; on failure it reports the status to
// onFailure and stays on the failure track.
func DoubleMap[S comparable, In, Out any](ctx context.Context, input sv.StatusValue[S, In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, status S)) sv.StatusValue[S, Out] {

	if input.HasValue() {
		return sv.Success(input.Status(), onSuccess(ctx, input.Value()))
	}

	onFailure(ctx, input.Status())
	return sv.FailFrom[S, In, Out](input)
}

func Finally[S comparable, In, Out any](ctx context.Context, input sv.StatusValue[S, In],
	onSuccess func(ctx context.Context, status S, r In) Out,
	onFailure func(ctx context.Context, status S) Out) Out {

	if input.HasValue() {
		return onSuccess(ctx, input.Status(), input.Value())
	}
	return onFailure(ctx, input.Status())
}

// Recover runs fn and turns an *sv.AccessError panic whose status is an S
// into a failure with that status. Any other panic is re-raised.
func Recover[S comparable, T any](ctx context.Context,
	fn func(ctx context.Context) sv.StatusValue[S, T]) (out sv.StatusValue[S, T]) {

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if ae, ok := rec.(*sv.AccessError); ok {
			if status, ok := ae.Status.(S); ok {
				out = sv.Failure[S, T](status)
				return
			}
		}
		panic(rec)
	}()

	return fn(ctx)
}

// Join feeds input through each step and folds every step's output with
// concat. With breakOnFailure it stops at the first failure.
func Join[S comparable, T any](ctx context.Context,
	input sv.StatusValue[S, T],
	breakOnFailure bool,
	concat func(ctx context.Context, current sv.StatusValue[S, T]) sv.StatusValue[S, T],
	steps ...func(ctx context.Context, in sv.StatusValue[S, T]) sv.StatusValue[S, T]) sv.StatusValue[S, T] {

	if len(steps) == 0 || concat == nil || !sv.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, steps[0](ctx, input))

	if finalResult.HasValue() || !breakOnFailure {
		for _, step := range steps[1:] {
			if !sv.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, step(ctx, finalResult))
			if !nextRes.HasValue() && breakOnFailure {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
