package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/statusvalue/pkg/sv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonNegative(_ context.Context, in int) (bool, sv.Code) {
	return in >= 0, sv.InvalidArgument
}

func even(_ context.Context, in int) (bool, sv.Code) {
	return in%2 == 0, sv.Unknown
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, sv.OK, 4, nonNegative)
	require.True(t, ok.HasValue())
	assert.Equal(t, 4, ok.Value())

	bad := Validate(ctx, sv.OK, -1, nonNegative)
	assert.False(t, bad.HasValue())
	assert.Equal(t, sv.InvalidArgument, bad.Status())
}

func TestAndValidate_SkipsFailure(t *testing.T) {
	t.Parallel()

	called := false
	res := AndValidate(context.Background(), Fail[sv.Code, int](sv.NotFound),
		func(ctx context.Context, in int) (bool, sv.Code) {
			called = true
			return true, sv.OK
		})

	assert.False(t, called)
	assert.Equal(t, sv.NotFound, res.Status())
}

func TestValidateAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.True(t, ValidateAll(ctx, sv.Some(10), nonNegative, even).HasValue())

	res := ValidateAll(ctx, sv.Some(-3), nonNegative, even)
	assert.Equal(t, sv.InvalidArgument, res.Status())

	res = ValidateAll(ctx, sv.Some(3), nonNegative, even)
	assert.Equal(t, sv.Unknown, res.Status())
}

func TestValidateAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ValidateAll(ctx, sv.Some(-3), nonNegative)
	assert.True(t, res.HasValue(), "validators must not run on a canceled context")
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	toText := func(ctx context.Context, r int) sv.StatusValue[string, string] {
		return sv.Success("converted", strconv.Itoa(r))
	}

	out := Switch(ctx, sv.Success("in", 12), toText)
	assert.Equal(t, "12", out.Value())
	assert.Equal(t, "converted", out.Status())

	in := sv.Failure[string, int]("broken")
	out = Switch(ctx, in, toText)
	assert.False(t, out.HasValue())
	assert.Equal(t, "broken", out.Status())
	assert.Equal(t, in.Id(), out.Id())
}

func TestMap_KeepsStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, sv.Success("excellent", 2), func(ctx context.Context, r int) float64 {
		return float64(r) / 4
	})
	assert.Equal(t, "excellent", out.Status())
	assert.InDelta(t, 0.5, out.Value(), 1e-9)

	failed := Map(ctx, sv.Failure[string, int]("nope"), func(ctx context.Context, r int) float64 {
		t.Fatalf("map must not run on failure")
		return 0
	})
	assert.Equal(t, "nope", failed.Status())
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	toStatus := func(ctx context.Context, err error) string { return "error: " + err.Error() }

	out := Try(ctx, sv.Success("ok", "12"), func(ctx context.Context, r string) (int, error) {
		return strconv.Atoi(r)
	}, toStatus)
	assert.Equal(t, 12, out.Value())
	assert.Equal(t, "ok", out.Status())

	out = Try(ctx, sv.Success("ok", "abc"), func(ctx context.Context, r string) (int, error) {
		return 0, errors.New("not a number")
	}, toStatus)
	assert.False(t, out.HasValue())
	assert.Equal(t, "error: not a number", out.Status())
}

func TestTryCode(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := TryCode(ctx, sv.Some(1), func(ctx context.Context, r int) (string, error) {
		return "", ctx.Err()
	})
	assert.Equal(t, sv.Canceled, out.Status())

	out = TryCode(context.Background(), sv.Some(1), func(ctx context.Context, r int) (string, error) {
		return "one", nil
	})
	assert.Equal(t, "one", out.Value())
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	toCode := func(ctx context.Context, err error) sv.Code { return sv.CodeOf(err) }

	out := FailOnError(ctx, sv.Some(1), func(ctx context.Context, in int) error {
		return sv.AlreadyExists
	}, toCode)
	assert.Equal(t, sv.AlreadyExists, out.Status())

	out = FailOnError(ctx, sv.Some(1), func(ctx context.Context, in int) error { return nil }, toCode)
	assert.Equal(t, 1, out.Value())
}

func TestTees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	record := func(ctx context.Context, r sv.Maybe[int]) { seen = append(seen, r.String()) }

	Tee(ctx, sv.Some(1), record)
	Tee(ctx, sv.None[int](), record)
	TeeIf(ctx, sv.Some(2), func(ctx context.Context, r sv.Maybe[int]) bool { return r.Value() > 5 }, record)
	TeeIf(ctx, sv.Some(6), func(ctx context.Context, r sv.Maybe[int]) bool { return r.Value() > 5 }, record)

	assert.Equal(t, []string{"ok(ok: 1)", "ok(ok: 6)"}, seen)

	var failures []sv.Code
	DoubleTee(ctx, sv.None[int](),
		func(ctx context.Context, s sv.Code, r int) { t.Fatalf("unexpected success") },
		func(ctx context.Context, s sv.Code) { failures = append(failures, s) })
	assert.Equal(t, []sv.Code{sv.NotFound}, failures)
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var reported sv.Code
	out := DoubleMap(ctx, sv.Failure[sv.Code, int](sv.Internal),
		func(ctx context.Context, r int) string { return strconv.Itoa(r) },
		func(ctx context.Context, s sv.Code) { reported = s })

	assert.False(t, out.HasValue())
	assert.Equal(t, sv.Internal, reported)

	out = DoubleMap(ctx, sv.Some(7),
		func(ctx context.Context, r int) string { return strconv.Itoa(r) },
		func(ctx context.Context, s sv.Code) { t.Fatalf("unexpected failure") })
	assert.Equal(t, "7", out.Value())
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	describe := func(r sv.StatusValue[string, int]) string {
		return Finally(ctx, r,
			func(ctx context.Context, s string, v int) string { return s + ": " + strconv.Itoa(v) },
			func(ctx context.Context, s string) string { return "Error: " + s })
	}

	assert.Equal(t, "excellent: 123", describe(sv.Success("excellent", 123)))
	assert.Equal(t, "Error: 'abc' isn't a number", describe(sv.Failure[string, int]("'abc' isn't a number")))
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Recover(ctx, func(ctx context.Context) sv.Maybe[int] {
		missing := sv.Failure[sv.Code, int](sv.Unavailable)
		return sv.Some(missing.Value() + 1)
	})
	assert.False(t, out.HasValue())
	assert.Equal(t, sv.Unavailable, out.Status())

	out = Recover(ctx, func(ctx context.Context) sv.Maybe[int] { return sv.Some(3) })
	assert.Equal(t, 3, out.Value())

	assert.PanicsWithValue(t, "other", func() {
		Recover(ctx, func(ctx context.Context) sv.Maybe[int] { panic("other") })
	})

	// status of another type is not ours to recover
	assert.Panics(t, func() {
		Recover(ctx, func(ctx context.Context) sv.Maybe[int] {
			return sv.Some(sv.Failure[string, int]("x").Value())
		})
	})
}

func TestJoin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inc := func(ctx context.Context, in sv.Maybe[int]) sv.Maybe[int] { return sv.Some(in.Value() + 1) }
	fail := func(ctx context.Context, in sv.Maybe[int]) sv.Maybe[int] { return sv.None[int]() }
	identity := func(ctx context.Context, c sv.Maybe[int]) sv.Maybe[int] { return c }

	assert.Equal(t, 3, Join(ctx, sv.Some(0), true, identity, inc, inc, inc).Value())

	executed := 0
	counting := func(ctx context.Context, in sv.Maybe[int]) sv.Maybe[int] {
		executed++
		return in
	}
	res := Join(ctx, sv.Some(0), true, identity, fail, counting)
	assert.False(t, res.HasValue())
	assert.Equal(t, 0, executed)

	assert.True(t, Join(ctx, sv.Some(5), true, nil, inc).HasValue())
	assert.Equal(t, 5, Join(ctx, sv.Some(5), true, identity).Value())
}
