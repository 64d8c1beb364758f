package process

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// An Option configures the termination behavior using the functional
// options paradigm popularized by Rob Pike. If you're unfamiliar with
// this style, see
// https://commandcenter.blogspot.com/2014/01/self-referential-functions-and-design.html
// and
// https://github.com/uber-go/guide/blob/master/style.md#functional-options
type Option interface {
	fmt.Stringer

	apply(*config)
}

type config struct {
	signal    os.Signal
	killAfter time.Duration
	log       *zap.Logger
}

func defaultConfig() config {
	return config{
		signal: os.Interrupt,
		log:    zap.NewNop(),
	}
}

type signalOption struct {
	signal os.Signal
}

func (o signalOption) apply(c *config) {
	c.signal = o.signal
}

func (o signalOption) String() string {
	return fmt.Sprintf("process.Signal: %s", o.signal)
}

// WithSignal sets the signal sent to ask the process to exit.
// The default is os.Interrupt.
func WithSignal(signal os.Signal) Option {
	return signalOption{signal: signal}
}

type killAfterOption time.Duration

func (o killAfterOption) apply(c *config) {
	c.killAfter = time.Duration(o)
}

func (o killAfterOption) String() string {
	return fmt.Sprintf("process.KillAfter: %s", time.Duration(o))
}

// WithKillAfter kills the process outright if it is still running
// after d. A zero duration disables the escalation.
func WithKillAfter(d time.Duration) Option {
	return killAfterOption(d)
}

type loggerOption struct {
	log *zap.Logger
}

func (o loggerOption) apply(c *config) {
	c.log = o.log
}

func (o loggerOption) String() string {
	return "process.Logger"
}

// WithLogger sets the logger used to report termination progress.
func WithLogger(log *zap.Logger) Option {
	return loggerOption{log: log}
}
