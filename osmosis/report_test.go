package osmosis_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thec00n/osmosis-cli-wrapper/osmosis"
	"github.com/thec00n/osmosis-cli-wrapper/registry"
	testutil "github.com/thec00n/osmosis-cli-wrapper/test_util"
	"github.com/thec00n/osmosis-cli-wrapper/types"
)

func loadRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Load("testdata/contracts.json")
	require.NoError(t, err, "Error loading contracts")
	return reg
}

func TestBuildReportRender(t *testing.T) {
	raw := testutil.ReadFixture(t, "tx_execute.json")

	report, err := osmosis.BuildReport(raw, loadRegistry(t))
	require.NoError(t, err)
	require.Equal(t, testutil.Sender, report.Sender)
	require.Len(t, report.Messages, 1)
	require.Equal(t, testutil.CreditManager, report.Messages[0].Contract)

	var out bytes.Buffer
	require.NoError(t, report.Render(&out))
	require.Equal(t, string(testutil.ReadFixture(t, "tx_execute.report.golden")), out.String())
}

func TestBuildReportWithoutNames(t *testing.T) {
	raw := testutil.ReadFixture(t, "tx_execute.json")

	report, err := osmosis.BuildReport(raw, nil)
	require.NoError(t, err)
	require.NotContains(t, report.Events, "(credit-manager)")
	require.Contains(t, report.Events, "--> execute( _contract_address: "+testutil.CreditManager+" )\n")
}

func TestBuildReportErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		wantErr error
	}{
		{"no messages", testutil.ReadFixture(t, "tx_no_messages.json"), types.ErrEmptyMessages},
		{"no logs", testutil.ReadFixture(t, "tx_no_logs.json"), types.ErrEmptyLogs},
		{"missing events", testutil.ReadFixture(t, "tx_missing_events.json"), types.ErrParse},
		{"truncated", []byte(`{"code": 0, "events": [`), types.ErrParse},
		{"empty", []byte(""), types.ErrParse},
		{"not an object", []byte(`["tx"]`), types.ErrParse},
		{"trailing data", append(testutil.ReadFixture(t, "tx_execute.json"), []byte(`{}`)...), types.ErrParse},
		{"trailing brackets", append(testutil.ReadFixture(t, "tx_execute.json"), []byte(`}]`)...), types.ErrParse},
		{"trailing text", append(testutil.ReadFixture(t, "tx_execute.json"), []byte(`} trailing`)...), types.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := osmosis.BuildReport(tt.raw, loadRegistry(t))
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, report)
		})
	}
}

func TestParseTxResponseSchemaMessage(t *testing.T) {
	_, err := osmosis.ParseTxResponse([]byte(`{
		"code": 0, "codespace": "", "data": "", "events": [],
		"tx": {"body": {"messages": []}},
		"logs": [{"msg_index": "zero", "events": []}]
	}`))
	require.ErrorIs(t, err, types.ErrParse)
	require.Contains(t, err.Error(), "/logs/0/msg_index")
}

func TestRenderKeepsNumbersAndSortsKeys(t *testing.T) {
	resp := `{
		"code": 0, "codespace": "", "data": "", "events": [],
		"tx": {"body": {"messages": [{
			"@type": "/cosmwasm.wasm.v1.MsgExecuteContract",
			"sender": "osmo1s",
			"contract": "osmo1c",
			"msg": {"z": 123456789012345678901234567890, "a": {"y": 1.50, "b": "<&>"}}
		}]}},
		"logs": [{"msg_index": 0, "events": [{"type": "wasm", "attributes": []}]}]
	}`

	report, err := osmosis.BuildReport([]byte(resp), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, report.Render(&out))

	expected := `--> Sender <--
osmo1s
--> Messages <--
Message:
{
  "@type": "/cosmwasm.wasm.v1.MsgExecuteContract",
  "sender": "osmo1s",
  "contract": "osmo1c",
  "msg": {
    "a": {
      "b": "<&>",
      "y": 1.50
    },
    "z": 123456789012345678901234567890
  },
  "funds": []
}
--> Events <--

--> Logs <--
--> wasm(  )

`
	require.Equal(t, resp+"\n"+expected, out.String())
}
