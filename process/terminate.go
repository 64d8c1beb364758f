package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Terminate asks the process behind cmd to exit and waits for it.
//
// The termination signal defaults to os.Interrupt and can be changed
// with WithSignal. With WithKillAfter the process is killed outright
// if it is still running after the given duration.
//
// Terminate calls cmd.Wait and must therefore be the only waiter of
// cmd. A process that exits with a non-zero status or because of the
// signal is considered terminated and yields no error. If ctx is done
// before the process exits, the context error is returned and the
// process is left running.
func Terminate(
	ctx context.Context,
	cmd *exec.Cmd,
	opts ...Option,
) (*os.ProcessState, error) {
	if cmd == nil || cmd.Process == nil {
		return nil, ErrNotStarted
	}

	cfg := defaultConfig()

	for _, o := range opts {
		o.apply(&cfg)
	}

	cfg.log.Debug(
		"sending termination signal",
		zap.Int("pid", cmd.Process.Pid),
		zap.Stringer("signal", cfg.signal),
	)

	err := cmd.Process.Signal(cfg.signal)
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return nil, fmt.Errorf("signal process: %w", err)
	}

	done := make(chan error, 1)

	go func() {
		done <- cmd.Wait()
	}()

	var killC <-chan time.Time

	if cfg.killAfter > 0 {
		timer := time.NewTimer(cfg.killAfter)
		defer timer.Stop()

		killC = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-killC:
			cfg.log.Warn(
				"process did not exit in time, killing it",
				zap.Int("pid", cmd.Process.Pid),
			)

			err := cmd.Process.Kill()
			if err != nil && !errors.Is(err, os.ErrProcessDone) {
				return nil, fmt.Errorf("kill process: %w", err)
			}

			// wait for the done channel from now on
			killC = nil

		case err := <-done:
			var exitErr *exec.ExitError

			if errors.As(err, &exitErr) {
				return exitErr.ProcessState, nil
			}

			if err != nil {
				return nil, fmt.Errorf("wait for process: %w", err)
			}

			return cmd.ProcessState, nil
		}
	}
}
