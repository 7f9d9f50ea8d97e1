package diag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesStdout(t *testing.T) {
	r := ExecRunner{}
	out, err := r.run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunClassifiesExitFailure(t *testing.T) {
	r := ExecRunner{}
	_, err := r.run(context.Background(), "false")

	var diagErr *Error
	require.ErrorAs(t, err, &diagErr)
	assert.Equal(t, KindExit, diagErr.Kind)
	assert.Equal(t, "false", diagErr.Utility)
}

func TestRunClassifiesSpawnFailure(t *testing.T) {
	r := ExecRunner{}
	_, err := r.run(context.Background(), "definitely-not-a-real-utility-xyz")

	var diagErr *Error
	require.ErrorAs(t, err, &diagErr)
	assert.Equal(t, KindSpawn, diagErr.Kind)
}

func TestRunSurvivesCancelledCaller(t *testing.T) {
	// A request context that is already dead must not stop the utility;
	// only the runner's own timeout bounds it.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := ExecRunner{Timeout: 5 * time.Second}
	out, err := r.run(ctx, "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunOutlivesCallerDisconnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	r := ExecRunner{Timeout: 5 * time.Second}
	out, err := r.run(ctx, "sh", "-c", "sleep 0.3 && echo done")
	require.NoError(t, err)
	assert.Equal(t, "done\n", out)
}

func TestRunClassifiesTimeout(t *testing.T) {
	r := ExecRunner{Timeout: 50 * time.Millisecond}
	_, err := r.run(context.Background(), "sleep", "5")

	var diagErr *Error
	require.ErrorAs(t, err, &diagErr)
	assert.Equal(t, KindTimeout, diagErr.Kind)
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("exit status 2")
	err := &Error{Utility: "ping", Kind: KindExit, Err: cause}

	assert.Equal(t, "ping: exit: exit status 2", err.Error())
	assert.True(t, errors.Is(err, cause))
}
