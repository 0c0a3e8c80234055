package osmosis_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thec00n/osmosis-cli-wrapper/config"
	"github.com/thec00n/osmosis-cli-wrapper/cosmos"
	"github.com/thec00n/osmosis-cli-wrapper/osmosis"
	testutil "github.com/thec00n/osmosis-cli-wrapper/test_util"
	"github.com/thec00n/osmosis-cli-wrapper/types"
)

const depositMsg = `{"update_credit_account":{"account_id":"1","actions":[{"deposit":{"denom":"uosmo","amount":"1000000"}}]}}`

func TestExecute(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.RespondStdout(`{"height":"0","txhash":"` + txHash + `","code":0}`)
	o := newChain(t, runner)

	var out bytes.Buffer
	err := o.Execute(context.Background(), "credit-manager", depositMsg, "1000000uosmo", &out)
	require.NoError(t, err)

	call := runner.LastCall(t)
	require.Equal(t, o.Network().ExecuteArgs(testutil.CreditManager, depositMsg, "1000000uosmo"), call.Args)
	require.Equal(t, "--amount=1000000uosmo", call.Args[len(call.Args)-1])

	require.Equal(t, `{
  "code": 0,
  "height": "0",
  "txhash": "`+txHash+`"
}
`, out.String())
}

func TestExecuteWithoutAmount(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.RespondStdout(`{}`)
	o := newChain(t, runner)

	var out bytes.Buffer
	require.NoError(t, o.Execute(context.Background(), "red-bank", `{"update_asset":{}}`, "", &out))

	call := runner.LastCall(t)
	require.Equal(t, "--chain-id=osmo-test-5", call.Args[len(call.Args)-1])
	require.Equal(t, testutil.RedBank, call.Args[3])
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name     string
		contract string
		msg      string
		amount   string
		wantErr  error
		contains string
	}{
		{"missing contract", "", depositMsg, "", types.ErrInvalidInput, "contract name is required"},
		{"unknown contract", "credit-managr", depositMsg, "", types.ErrNotFound, "did you mean"},
		{"invalid json", "credit-manager", `{"deposit":`, "", types.ErrInvalidInput, "not valid JSON"},
		{"invalid amount", "credit-manager", depositMsg, "uosmo", types.ErrInvalidInput, "invalid coin"},
		{"zero amount", "credit-manager", depositMsg, "0uosmo", types.ErrInvalidInput, "invalid coin amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &testutil.FakeRunner{}
			o := newChain(t, runner)

			var out bytes.Buffer
			err := o.Execute(context.Background(), tt.contract, tt.msg, tt.amount, &out)
			require.ErrorIs(t, err, tt.wantErr)
			require.Contains(t, err.Error(), tt.contains)
			require.Empty(t, runner.Calls)
			require.Empty(t, out.String())
		})
	}
}

func TestQuery(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.RespondStdout(`{"data":{"owner":"osmo1owner"}}` + "\n")
	o := newChain(t, runner)

	var out bytes.Buffer
	require.NoError(t, o.Query(context.Background(), "credit-manager", `{"config":{}}`, &out))

	call := runner.LastCall(t)
	require.Equal(t, o.Network().QueryContractArgs(testutil.CreditManager, `{"config":{}}`), call.Args)
	require.Equal(t, "{\n  \"data\": {\n    \"owner\": \"osmo1owner\"\n  }\n}\n", out.String())
}

func TestQueryDaemonFailure(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.Respond(cosmos.Output{Stderr: []byte("Error: query wasm contract failed"), ExitCode: 1})
	o := newChain(t, runner)

	var out bytes.Buffer
	err := o.Query(context.Background(), "credit-manager", `{"config":{}}`, &out)
	require.ErrorIs(t, err, types.ErrCommand)
	require.Contains(t, err.Error(), "query wasm contract failed")
	require.Empty(t, out.String())
}

func TestNilContracts(t *testing.T) {
	runner := &testutil.FakeRunner{}
	o := osmosis.NewChain(config.Default(), cosmos.NewProvider(runner, "osmosisd", 0, nil, nil), nil, nil)

	err := o.Query(context.Background(), "credit-manager", `{}`, &bytes.Buffer{})
	require.ErrorIs(t, err, types.ErrNotFound)
	require.Empty(t, runner.Calls)
}

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name     string
		out      cosmos.Output
		expected string
	}{
		{
			name:     "json stdout",
			out:      cosmos.Output{Stdout: []byte(`{"b":[1,2],"a":"x"}`), Stderr: []byte("gas estimate: 1234")},
			expected: "{\n  \"a\": \"x\",\n  \"b\": [\n    1,\n    2\n  ]\n}\n",
		},
		{
			name:     "json with trailing brace",
			out:      cosmos.Output{Stdout: []byte(`{"a":1}}`)},
			expected: "stdout:\n{\"a\":1}}\n",
		},
		{
			name:     "json with trailing text",
			out:      cosmos.Output{Stdout: []byte(`{"a":1} trailing`), Stderr: []byte("warning: legacy flag")},
			expected: "stderr:\nwarning: legacy flag\n",
		},
		{
			name:     "stderr",
			out:      cosmos.Output{Stdout: []byte("gas estimate: 1234"), Stderr: []byte("warning: legacy flag")},
			expected: "stderr:\nwarning: legacy flag\n",
		},
		{
			name:     "plain stdout",
			out:      cosmos.Output{Stdout: []byte("code: 0")},
			expected: "stdout:\ncode: 0\n",
		},
		{
			name:     "nothing",
			out:      cosmos.Output{},
			expected: "stdout:\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, osmosis.PrintResult(&buf, tt.out))
			require.Equal(t, tt.expected, buf.String())
		})
	}
}
