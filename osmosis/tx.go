package osmosis

import (
	"context"
	"io"

	"github.com/thec00n/osmosis-cli-wrapper/cosmos"
)

// GetTxEvents queries a transaction and writes its report to w. When the
// daemon fails its *types.CommandError is returned and nothing is parsed.
func (o *Osmosis) GetTxEvents(ctx context.Context, hash string, w io.Writer) error {
	hash, err := cosmos.NormalizeTxHash(hash)
	if err != nil {
		return err
	}

	logger := o.logger.With("tx", hash)
	logger.Debug("Querying tx")

	raw, err := o.cc.QueryTx(ctx, o.network, hash)
	if err != nil {
		return err
	}

	report, err := BuildReport(raw, o.contracts)
	if err != nil {
		logger.Error("Unable to summarize tx", "err", err)
		return err
	}
	logger.Debug("Summarized tx", "sender", report.Sender, "messages", len(report.Messages))

	return report.Render(w)
}
