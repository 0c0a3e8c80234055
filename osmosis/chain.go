package osmosis

import (
	"cosmossdk.io/log"

	"github.com/thec00n/osmosis-cli-wrapper/config"
	"github.com/thec00n/osmosis-cli-wrapper/cosmos"
	"github.com/thec00n/osmosis-cli-wrapper/events"
)

// Contracts resolves contract names to addresses and back.
type Contracts interface {
	ResolveAddress(name string) (string, error)
	events.NameResolver
}

// Osmosis runs contract and tx commands against one network through the
// node daemon.
type Osmosis struct {
	cc        *cosmos.CosmosProvider
	network   cosmos.Network
	contracts Contracts
	logger    log.Logger
}

func NewChain(cfg config.Config, cc *cosmos.CosmosProvider, contracts Contracts, logger log.Logger) *Osmosis {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Osmosis{
		cc: cc,
		network: cosmos.Network{
			Node:           cfg.Node,
			ChainID:        cfg.ChainID,
			Wallet:         cfg.Wallet,
			KeyringBackend: cfg.KeyringBackend,
			GasPrices:      cfg.GasPrices,
			Gas:            cfg.Gas,
			GasAdjustment:  cfg.GasAdjustment,
		},
		contracts: contracts,
		logger:    logger.With("chain", "osmosis", "chain_id", cfg.ChainID),
	}
}

func (o *Osmosis) Network() cosmos.Network {
	return o.network
}
