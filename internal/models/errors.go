package models

import (
	"errors"
	"fmt"
)

// Process exit codes, one per error class. Interactive mode contains all
// dispatch failures and always exits zero.
const (
	ExitOK         = 0
	ExitConfig     = 2
	ExitLoad       = 3
	ExitValidation = 4
	ExitGateway    = 5
	ExitExecution  = 6
)

// ConfigError is a startup-time configuration problem (missing credential,
// unknown provider). It is the only fatal, unrecovered error class.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
}

// LoadError reports a dataset that could not be loaded: missing file,
// unreadable content, or an unsupported format.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError reports a request that references data the loaded dataset
// does not have, caught before the Model Gateway is contacted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// GatewayError wraps a failed model backend call. There is no retry; it
// propagates to the session boundary and is reported there.
type GatewayError struct {
	Provider string
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("model gateway (%s): %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// ExecutionError reports a sandbox run that failed, carrying whatever output
// the script produced before dying.
type ExecutionError struct {
	Reason string
	Output string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed: %s", e.Reason)
}

// ExitCode maps an error to its process exit code. A nil error is ExitOK;
// an error outside the taxonomy exits 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		configErr     *ConfigError
		loadErr       *LoadError
		validationErr *ValidationError
		gatewayErr    *GatewayError
		executionErr  *ExecutionError
	)
	switch {
	case errors.As(err, &configErr):
		return ExitConfig
	case errors.As(err, &loadErr):
		return ExitLoad
	case errors.As(err, &validationErr):
		return ExitValidation
	case errors.As(err, &gatewayErr):
		return ExitGateway
	case errors.As(err, &executionErr):
		return ExitExecution
	}
	return 1
}
