// Package diag invokes the OS diagnostic utilities that produce the
// raw WiFi inventory and latency data. Each call spawns a short-lived
// child process with a bounded timeout; failures come back as a typed
// *Error so callers can degrade gracefully instead of crashing. No
// retries happen at this layer.
package diag

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Kind classifies how a diagnostic invocation failed.
type Kind string

const (
	KindSpawn   Kind = "spawn"
	KindExit    Kind = "exit"
	KindTimeout Kind = "timeout"
)

// Error is a failed diagnostic utility invocation.
type Error struct {
	Utility string
	Kind    Kind
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Utility, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Runner abstracts the two diagnostic utilities so the scan service
// can be tested without spawning processes.
type Runner interface {
	// InventoryDump returns the raw WiFi inventory text from
	// `system_profiler SPAirPortDataType`.
	InventoryDump(ctx context.Context) (string, error)
	// LatencyProbe returns the raw output of `ping -c <count> <host>`.
	LatencyProbe(ctx context.Context, host string, count int) (string, error)
}

// ExecRunner runs the real utilities from PATH.
type ExecRunner struct {
	// Timeout bounds each invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout matches the upper bound the inventory utility needs
// on slow machines.
const DefaultTimeout = 30 * time.Second

func (r ExecRunner) InventoryDump(ctx context.Context) (string, error) {
	return r.run(ctx, "system_profiler", "SPAirPortDataType")
}

func (r ExecRunner) LatencyProbe(ctx context.Context, host string, count int) (string, error) {
	return r.run(ctx, "ping", "-c", strconv.Itoa(count), host)
}

func (r ExecRunner) run(ctx context.Context, utility string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	// A dropped HTTP request must not abort the in-flight utility;
	// only the timeout bounds it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, utility, args...).Output()
	if err != nil {
		return "", &Error{Utility: utility, Kind: classify(ctx, err), Err: err}
	}
	return string(out), nil
}

func classify(ctx context.Context, err error) Kind {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return KindTimeout
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return KindExit
	}
	return KindSpawn
}
