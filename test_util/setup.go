package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"

	"github.com/thec00n/osmosis-cli-wrapper/cmd"
	"github.com/thec00n/osmosis-cli-wrapper/config"
	"github.com/thec00n/osmosis-cli-wrapper/cosmos"
)

// Addresses of the contracts in Contracts.
const (
	CreditManager = "osmo1credit0manager0contract0address0xyz"
	RedBank       = "osmo1red0bank0contract0address0xyz"
	Sender        = "osmo1sender0wallet0address0xyz"
)

// Contracts is a small registry document. The second name for CreditManager
// never wins a reverse lookup.
const Contracts = `{
  "credit-manager": "` + CreditManager + `",
  "red-bank": "` + RedBank + `",
  "credit-manager-v2": "` + CreditManager + `"
}
`

// Call is one daemon invocation seen by FakeRunner.
type Call struct {
	Name string
	Args []string
}

// FakeRunner stands in for the node daemon. Queued outputs are returned in
// order; once they run out Default is returned.
type FakeRunner struct {
	mu sync.Mutex

	Calls   []Call
	queue   []cosmos.Output
	Default cosmos.Output
	// returned instead of an output, as if the daemon could not be started
	Err error
}

var _ cosmos.Runner = (*FakeRunner)(nil)

func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (cosmos.Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	if f.Err != nil {
		return cosmos.Output{}, f.Err
	}
	if len(f.queue) == 0 {
		return f.Default, nil
	}
	out := f.queue[0]
	f.queue = f.queue[1:]
	return out, nil
}

// Respond queues the output of the next daemon call.
func (f *FakeRunner) Respond(out cosmos.Output) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, out)
	return f
}

// RespondStdout queues a successful call printing stdout.
func (f *FakeRunner) RespondStdout(stdout string) *FakeRunner {
	return f.Respond(cosmos.Output{Stdout: []byte(stdout)})
}

// LastCall fails the test when the daemon was never invoked.
func (f *FakeRunner) LastCall(t *testing.T) Call {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.Calls, "daemon was not invoked")
	return f.Calls[len(f.Calls)-1]
}

// WriteFile writes content to name inside a temporary directory and returns
// its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ReadFixture returns a file from the testdata directory of the calling package.
func ReadFixture(t *testing.T, name string) []byte {
	t.Helper()
	bz, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err, "Error reading fixture")
	return bz
}

// ConfigSetup returns an app state talking to a fake daemon, with the
// Contracts registry written to a temporary file.
func ConfigSetup(t *testing.T) (*cmd.AppState, *FakeRunner) {
	t.Helper()

	cfg := config.Default()
	cfg.Daemon = "osmosisd-test"
	cfg.Contracts = WriteFile(t, "contracts.json", Contracts)

	runner := &FakeRunner{}

	a := cmd.NewAppState()
	a.LogLevel = "error"
	a.Logger = log.NewLogger(os.Stderr, log.LevelOption(zerolog.ErrorLevel))
	a.Config = &cfg
	a.Runner = runner

	return a, runner
}
