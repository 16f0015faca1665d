package sandbox

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avvvet/dsbuddy/internal/models"
)

// The runner only cares that the interpreter reads a script file, so tests
// use sh instead of python to stay hermetic.
func testRunner(timeout time.Duration) *Runner {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner("sh", timeout, logger)
}

func TestExecuteCapturesOutput(t *testing.T) {
	res := testRunner(5 * time.Second).Execute(context.Background(), "echo hello from the sandbox")

	require.False(t, res.Failed())
	assert.Contains(t, res.Output, "hello from the sandbox")
}

func TestExecuteFailureIsInBand(t *testing.T) {
	res := testRunner(5 * time.Second).Execute(context.Background(), "echo boom >&2\nexit 3")

	require.True(t, res.Failed())

	var execErr *models.ExecutionError
	require.ErrorAs(t, res.Err, &execErr)
	assert.Contains(t, execErr.Output, "boom")
}

func TestExecuteTimeout(t *testing.T) {
	res := testRunner(100 * time.Millisecond).Execute(context.Background(), "sleep 5")

	require.True(t, res.Failed())
	assert.Contains(t, res.Err.Error(), "timed out")
}

func TestExecuteMissingInterpreter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := NewRunner("definitely-not-an-interpreter", time.Second, logger)

	res := runner.Execute(context.Background(), "print('hi')")

	require.True(t, res.Failed())
}
