package osmosis_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thec00n/osmosis-cli-wrapper/config"
	"github.com/thec00n/osmosis-cli-wrapper/cosmos"
	"github.com/thec00n/osmosis-cli-wrapper/osmosis"
	testutil "github.com/thec00n/osmosis-cli-wrapper/test_util"
	"github.com/thec00n/osmosis-cli-wrapper/types"
)

const txHash = "5002A249B1353FA59C1660EBAE5FA7FC652AC1E77F69CEF3A4533B0DF2864012"

func newChain(t *testing.T, runner cosmos.Runner) *osmosis.Osmosis {
	t.Helper()
	cc := cosmos.NewProvider(runner, config.DefaultDaemon, 0, nil, nil)
	return osmosis.NewChain(config.Default(), cc, loadRegistry(t), nil)
}

func TestGetTxEvents(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.RespondStdout(string(testutil.ReadFixture(t, "tx_execute.json")))
	o := newChain(t, runner)

	var out bytes.Buffer
	err := o.GetTxEvents(context.Background(), "0x5002a249b1353fa59c1660ebae5fa7fc652ac1e77f69cef3a4533b0df2864012", &out)
	require.NoError(t, err)
	require.Equal(t, string(testutil.ReadFixture(t, "tx_execute.report.golden")), out.String())

	call := runner.LastCall(t)
	require.Equal(t, config.DefaultDaemon, call.Name)
	require.Equal(t, o.Network().QueryTxArgs(txHash), call.Args)
}

func TestGetTxEventsDaemonFailure(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.Respond(cosmos.Output{
		Stdout:   []byte("not json"),
		Stderr:   []byte("Error: tx (" + txHash + ") not found\n"),
		ExitCode: 1,
	})
	o := newChain(t, runner)

	var out bytes.Buffer
	err := o.GetTxEvents(context.Background(), txHash, &out)
	require.ErrorIs(t, err, types.ErrCommand)

	var cmdErr *types.CommandError
	require.True(t, errors.As(err, &cmdErr))
	require.Equal(t, "Error: tx ("+txHash+") not found\n", cmdErr.Stderr)
	require.Empty(t, out.String())
}

func TestGetTxEventsInvalidHash(t *testing.T) {
	for _, hash := range []string{"", "  ", "zz", "ABCD"} {
		runner := &testutil.FakeRunner{}
		o := newChain(t, runner)

		var out bytes.Buffer
		err := o.GetTxEvents(context.Background(), hash, &out)
		require.ErrorIs(t, err, types.ErrInvalidInput, hash)
		require.Empty(t, runner.Calls)
		require.Empty(t, out.String())
	}
}

func TestGetTxEventsUnparsable(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.RespondStdout(string(testutil.ReadFixture(t, "tx_no_logs.json")))
	o := newChain(t, runner)

	var out bytes.Buffer
	err := o.GetTxEvents(context.Background(), txHash, &out)
	require.ErrorIs(t, err, types.ErrEmptyLogs)
	require.Empty(t, out.String())
}
