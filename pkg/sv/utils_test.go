package sv

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilPtr *AccessError
	var nilErr error = nilPtr

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(nilErr))
	assert.False(t, IsNil(&AccessError{}))
	assert.False(t, IsNil(OK))
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("wait: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancellationError(errors.New("a")))
	assert.False(t, IsCancellationError(Canceled))
	assert.False(t, IsCancellationError(nil))
}
