package process

import (
	"errors"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Actor returns an execute and an interrupt function for running the
// started cmd as an actor in an oklog/run group.
//
// The execute function waits for the process to exit and owns the
// cmd.Wait call. The interrupt function signals the process the same
// way Terminate does, honoring WithSignal and WithKillAfter.
func Actor(cmd *exec.Cmd, opts ...Option) (func() error, func(error)) {
	cfg := defaultConfig()

	for _, o := range opts {
		o.apply(&cfg)
	}

	execute := func() error {
		return cmd.Wait()
	}

	interrupt := func(error) {
		if cmd.Process == nil {
			return
		}

		cfg.log.Debug(
			"interrupting process",
			zap.Int("pid", cmd.Process.Pid),
			zap.Stringer("signal", cfg.signal),
		)

		err := cmd.Process.Signal(cfg.signal)
		if err != nil && !errors.Is(err, os.ErrProcessDone) {
			cfg.log.Error("failed to signal process", zap.Error(err))
		}

		if cfg.killAfter > 0 {
			time.AfterFunc(cfg.killAfter, func() {
				err := cmd.Process.Kill()
				if err != nil && !errors.Is(err, os.ErrProcessDone) {
					cfg.log.Error("failed to kill process", zap.Error(err))
				}
			})
		}
	}

	return execute, interrupt
}
