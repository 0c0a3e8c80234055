package cosmos

import (
	"context"
	"fmt"
)

// Labels of the daemon commands, used in logs and metrics.
const (
	LabelQueryTx       = "query_tx"
	LabelQueryContract = "query_contract"
	LabelExecute       = "execute"
)

// Network holds the daemon flags that identify the chain and the signer.
type Network struct {
	Node           string
	ChainID        string
	Wallet         string
	KeyringBackend string

	GasPrices     string
	Gas           string
	GasAdjustment string
}

// QueryTxArgs builds `query tx <hash>`.
func (n Network) QueryTxArgs(hash string) []string {
	return []string{
		"query", "tx", hash,
		"--output=json",
		fmt.Sprintf("--node=%s", n.Node),
	}
}

// QueryContractArgs builds `query wasm contract-state smart <address> <msg>`.
func (n Network) QueryContractArgs(address, msg string) []string {
	return []string{
		"query", "wasm", "contract-state", "smart", address, msg,
		"--output=json",
		fmt.Sprintf("--node=%s", n.Node),
	}
}

// ExecuteArgs builds `tx wasm execute <address> <msg>`, signed by the wallet
// and broadcast without confirmation. amount is omitted when empty.
func (n Network) ExecuteArgs(address, msg, amount string) []string {
	args := []string{
		"tx", "wasm", "execute", address, msg,
		fmt.Sprintf("--gas-prices=%s", n.GasPrices),
		fmt.Sprintf("--gas=%s", n.Gas),
		fmt.Sprintf("--gas-adjustment=%s", n.GasAdjustment),
		"-y",
		fmt.Sprintf("--keyring-backend=%s", n.KeyringBackend),
		"--output=json",
		fmt.Sprintf("--from=%s", n.Wallet),
		fmt.Sprintf("--node=%s", n.Node),
		fmt.Sprintf("--chain-id=%s", n.ChainID),
	}
	if amount != "" {
		args = append(args, fmt.Sprintf("--amount=%s", amount))
	}
	return args
}

// QueryTx returns the raw JSON of a transaction.
func (cc *CosmosProvider) QueryTx(ctx context.Context, n Network, hash string) ([]byte, error) {
	out, err := cc.Run(ctx, LabelQueryTx, n.QueryTxArgs(hash)...)
	if err != nil {
		return nil, err
	}
	return out.Stdout, nil
}

// QueryContract runs a smart query against a contract.
func (cc *CosmosProvider) QueryContract(ctx context.Context, n Network, address, msg string) (Output, error) {
	return cc.Run(ctx, LabelQueryContract, n.QueryContractArgs(address, msg)...)
}

// ExecuteContract signs and broadcasts a contract execution.
func (cc *CosmosProvider) ExecuteContract(ctx context.Context, n Network, address, msg, amount string) (Output, error) {
	return cc.Run(ctx, LabelExecute, n.ExecuteArgs(address, msg, amount)...)
}
