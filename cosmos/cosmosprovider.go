package cosmos

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"cosmossdk.io/log"

	"github.com/thec00n/osmosis-cli-wrapper/metrics"
	"github.com/thec00n/osmosis-cli-wrapper/types"
)

// Output is what the daemon printed, and how it exited.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

func (o Output) Success() bool {
	return o.ExitCode == 0
}

// Runner runs a daemon command to completion. An error is returned only when
// the command could not be started; a non-zero exit is reported in Output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

const waitDelay = 2 * time.Second

// ExecRunner runs commands on the local machine.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// children of a killed daemon may keep the output pipes open
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	return out, err
}

// CosmosProvider invokes the node daemon against one network.
type CosmosProvider struct {
	Runner  Runner
	Daemon  string
	Timeout time.Duration

	Logger  log.Logger
	Metrics *metrics.PromMetrics
}

// NewProvider builds a provider that runs daemon through runner. A zero
// timeout leaves daemon calls without a deadline.
func NewProvider(runner Runner, daemon string, timeout time.Duration, logger log.Logger, m *metrics.PromMetrics) *CosmosProvider {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &CosmosProvider{
		Runner:  runner,
		Daemon:  daemon,
		Timeout: timeout,
		Logger:  logger,
		Metrics: m,
	}
}

// Run executes one daemon command. label names the command in logs and
// metrics. Failing to start the daemon and a non-zero exit both return a
// *types.CommandError, the latter together with the output.
func (cc *CosmosProvider) Run(ctx context.Context, label string, args ...string) (Output, error) {
	if cc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cc.Timeout)
		defer cancel()
	}

	cc.Logger.Debug("Running daemon command", "command", label, "daemon", cc.Daemon, "args", strings.Join(args, " "))

	start := time.Now()
	out, err := cc.Runner.Run(ctx, cc.Daemon, args...)
	if err == nil && !out.Success() {
		stderr := string(out.Stderr)
		if stderr == "" && ctx.Err() != nil {
			stderr = ctx.Err().Error()
		}
		err = &types.CommandError{Command: cc.Daemon, ExitCode: out.ExitCode, Stderr: stderr}
	} else if err != nil {
		err = &types.CommandError{Command: cc.Daemon, ExitCode: -1, Stderr: err.Error()}
	}
	took := time.Since(start)
	cc.Metrics.ObserveDaemonCall(label, took, err)

	if err != nil {
		cc.Logger.Debug("Daemon command failed", "command", label, "took", took, "err", err)
		return out, err
	}
	cc.Logger.Debug("Daemon command finished", "command", label, "took", took, "stdout_bytes", len(out.Stdout))
	return out, nil
}
