package osmosis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/thec00n/osmosis-cli-wrapper/cosmos"
	"github.com/thec00n/osmosis-cli-wrapper/types"
)

// Execute signs and broadcasts msg to the named contract, attaching amount
// when it is set, and prints the daemon's answer.
func (o *Osmosis) Execute(ctx context.Context, contract, msg, amount string, w io.Writer) error {
	address, err := o.prepare(contract, msg)
	if err != nil {
		return err
	}
	coins, err := cosmos.ParseCoins(amount)
	if err != nil {
		return err
	}

	o.logger.Info("Executing contract", "contract", contract, "address", address, "amount", coins)

	out, err := o.cc.ExecuteContract(ctx, o.network, address, msg, coins)
	if err != nil {
		return err
	}
	return PrintResult(w, out)
}

// Query runs a smart query against the named contract and prints the result.
func (o *Osmosis) Query(ctx context.Context, contract, msg string, w io.Writer) error {
	address, err := o.prepare(contract, msg)
	if err != nil {
		return err
	}

	o.logger.Debug("Querying contract", "contract", contract, "address", address)

	out, err := o.cc.QueryContract(ctx, o.network, address, msg)
	if err != nil {
		return err
	}
	return PrintResult(w, out)
}

func (o *Osmosis) prepare(contract, msg string) (string, error) {
	if contract == "" {
		return "", types.ErrInvalidInput.Wrap("a contract name is required")
	}
	if o.contracts == nil {
		return "", types.ErrNotFound.Wrapf("%q: no contracts registry loaded", contract)
	}
	address, err := o.contracts.ResolveAddress(contract)
	if err != nil {
		return "", err
	}
	if !json.Valid([]byte(msg)) {
		return "", types.ErrInvalidInput.Wrapf("message for contract %s is not valid JSON", contract)
	}
	return address, nil
}

// PrintResult pretty prints the daemon's stdout when it is JSON. Otherwise
// stderr is shown if there is any, and stdout verbatim if not.
func PrintResult(w io.Writer, out cosmos.Output) error {
	if doc, err := decodeJSON(out.Stdout); err == nil {
		return writePrettyJSON(w, doc)
	}
	if len(out.Stderr) > 0 {
		_, err := fmt.Fprintf(w, "stderr:\n%s\n", out.Stderr)
		return err
	}
	_, err := fmt.Fprintf(w, "stdout:\n%s\n", out.Stdout)
	return err
}
