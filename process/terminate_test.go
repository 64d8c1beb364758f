package process_test

import (
	"bufio"
	"context"
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/oklog/run"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wowario/haveno-go/process"
	"go.uber.org/zap"
)

// sleepCommand returns a started process that exits on the usual
// termination signals.
func sleepCommand(t *testing.T) *exec.Cmd {
	t.Helper()

	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())

	return cmd
}

// stubbornCommand returns a started process that ignores SIGINT.
// It returns only once the trap is installed, so a signal sent
// from here on cannot land before it.
func stubbornCommand(t *testing.T) *exec.Cmd {
	t.Helper()

	cmd := exec.Command("sh", "-c", `trap "" INT; echo ready; sleep 30`)

	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)

	require.NoError(t, cmd.Start())

	t.Cleanup(func() {
		_ = cmd.Process.Kill()
	})

	// the line is printed after the trap is in place
	line, err := bufio.NewReader(stdout).ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "ready\n", line)

	return cmd
}

func TestTerminate_NotStarted(t *testing.T) {
	_, err := process.Terminate(context.Background(), nil)
	assert.ErrorIs(t, err, process.ErrNotStarted)

	_, err = process.Terminate(context.Background(), exec.Command("sleep", "1"))
	assert.ErrorIs(t, err, process.ErrNotStarted)
}

func TestTerminate_Interrupt(t *testing.T) {
	cmd := sleepCommand(t)

	start := time.Now()

	state, err := process.Terminate(
		context.Background(),
		cmd,
		process.WithLogger(zap.NewExample()),
	)
	require.NoError(t, err)

	require.NotNil(t, state)
	assert.False(t, state.Success())

	// the process died from the signal, long before the sleep ended
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestTerminate_WithSignal(t *testing.T) {
	cmd := sleepCommand(t)

	state, err := process.Terminate(
		context.Background(),
		cmd,
		process.WithSignal(syscall.SIGTERM),
	)
	require.NoError(t, err)

	ws, ok := state.Sys().(syscall.WaitStatus)
	require.True(t, ok)

	assert.Equal(t, syscall.SIGTERM, ws.Signal())
}

func TestTerminate_AlreadyExited(t *testing.T) {
	cmd := exec.Command("true")
	require.NoError(t, cmd.Start())

	// let the process exit before asking it to
	time.Sleep(200 * time.Millisecond)

	state, err := process.Terminate(context.Background(), cmd)
	require.NoError(t, err)

	assert.True(t, state.Success())
}

func TestTerminate_ContextDeadline(t *testing.T) {
	cmd := stubbornCommand(t)

	ctx, cancel := context.WithTimeout(
		context.Background(),
		200*time.Millisecond,
	)
	defer cancel()

	_, err := process.Terminate(ctx, cmd)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTerminate_SignalIgnored(t *testing.T) {
	cmd := stubbornCommand(t)

	// deliver a signal as early as possible after start; the
	// readiness handshake guarantees the trap is already in place
	// and the process survives
	require.NoError(t, cmd.Process.Signal(os.Interrupt))

	ctx, cancel := context.WithTimeout(
		context.Background(),
		200*time.Millisecond,
	)
	defer cancel()

	_, err := process.Terminate(ctx, cmd)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTerminate_KillAfter(t *testing.T) {
	cmd := stubbornCommand(t)

	start := time.Now()

	state, err := process.Terminate(
		context.Background(),
		cmd,
		process.WithKillAfter(200*time.Millisecond),
		process.WithLogger(zap.NewExample()),
	)
	require.NoError(t, err)

	require.NotNil(t, state)
	assert.False(t, state.Success())

	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestActor(t *testing.T) {
	t.Run("RunGroup", func(t *testing.T) {
		cmd := sleepCommand(t)

		var g run.Group

		g.Add(process.Actor(cmd))

		// second actor stops the group shortly after it starts,
		// interrupting the process actor
		g.Add(func() error {
			time.Sleep(100 * time.Millisecond)

			return nil
		}, func(error) {})

		start := time.Now()

		require.NoError(t, g.Run())

		require.NotNil(t, cmd.ProcessState)
		assert.False(t, cmd.ProcessState.Success())

		assert.Less(t, time.Since(start), 10*time.Second)
	})

	t.Run("NotStarted", func(t *testing.T) {
		execute, interrupt := process.Actor(exec.Command("sleep", "1"))

		// interrupting an unstarted command is a no-op
		interrupt(nil)

		assert.Error(t, execute())
	})

	t.Run("KillAfter", func(t *testing.T) {
		cmd := stubbornCommand(t)

		execute, interrupt := process.Actor(
			cmd,
			process.WithKillAfter(200*time.Millisecond),
		)

		interrupt(nil)

		start := time.Now()

		// the process ignores the signal doing the interrupt,
		// the kill escalation ends the wait
		assert.Error(t, execute())

		assert.Less(t, time.Since(start), 10*time.Second)
	})
}
