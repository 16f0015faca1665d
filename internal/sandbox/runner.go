package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/avvvet/dsbuddy/internal/models"
)

// Runner executes model-generated code in a fresh interpreter process. Each
// execution gets its own temp directory and script file; nothing is shared
// between runs. Failures never escape Execute as a Go error or panic, they
// come back in-band as a failed ExecutionResult.
type Runner struct {
	pythonBin string
	timeout   time.Duration
	logger    *slog.Logger
}

func NewRunner(pythonBin string, timeout time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		pythonBin: pythonBin,
		timeout:   timeout,
		logger:    logger,
	}
}

// Execute runs code as a script under the configured interpreter, capturing
// combined stdout/stderr. The run is bounded by the runner's timeout on top
// of whatever deadline ctx already carries.
func (r *Runner) Execute(ctx context.Context, code string) models.ExecutionResult {
	dir, err := os.MkdirTemp("", "dsbuddy-sandbox-")
	if err != nil {
		return failure("cannot create sandbox directory: "+err.Error(), "")
	}
	defer os.RemoveAll(dir)

	script := filepath.Join(dir, "script.py")
	if err := os.WriteFile(script, []byte(code), 0o600); err != nil {
		return failure("cannot write script: "+err.Error(), "")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Debug("executing generated code", "interpreter", r.pythonBin, "bytes", len(code))

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, r.pythonBin, script)
	cmd.Dir = dir
	cmd.Stdout = &output
	cmd.Stderr = &output

	err = cmd.Run()

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return failure(fmt.Sprintf("timed out after %s", r.timeout), output.String())
	case err != nil:
		return failure(err.Error(), output.String())
	}

	return models.ExecutionResult{Output: output.String()}
}

func failure(reason, output string) models.ExecutionResult {
	return models.ExecutionResult{
		Output: output,
		Err:    &models.ExecutionError{Reason: reason, Output: output},
	}
}
