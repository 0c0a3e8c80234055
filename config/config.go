package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thec00n/osmosis-cli-wrapper/types"
)

const (
	DefaultDaemon         = "osmosisd"
	DefaultNode           = "https://rpc.osmotest5.osmosis.zone:443"
	DefaultChainID        = "osmo-test-5"
	DefaultWallet         = "wallet"
	DefaultContracts      = "config/rover-osmosis5-contracts.json"
	DefaultAddressPrefix  = "osmo"
	DefaultKeyringBackend = "test"
	DefaultGasPrices      = "0.025uosmo"
	DefaultGas            = "auto"
	DefaultGasAdjustment  = "1.3"
)

// Environment variables that override the config file.
const (
	EnvDaemon         = "OSMO_DAEMON"
	EnvNode           = "OSMO_NODE"
	EnvChainID        = "OSMO_CHAIN_ID"
	EnvWallet         = "OSMO_WALLET"
	EnvContracts      = "OSMO_CONTRACTS"
	EnvKeyringBackend = "OSMO_KEYRING_BACKEND"
)

// Config identifies the target network, the wallet used to sign and the
// contracts registry. It is passed explicitly to every component.
type Config struct {
	Daemon         string `yaml:"daemon" json:"daemon"`
	Node           string `yaml:"node" json:"node"`
	ChainID        string `yaml:"chain-id" json:"chain_id"`
	Wallet         string `yaml:"wallet" json:"wallet"`
	Contracts      string `yaml:"contracts" json:"contracts"`
	AddressPrefix  string `yaml:"address-prefix" json:"address_prefix"`
	KeyringBackend string `yaml:"keyring-backend" json:"keyring_backend"`

	GasPrices     string `yaml:"gas-prices" json:"gas_prices"`
	Gas           string `yaml:"gas" json:"gas"`
	GasAdjustment string `yaml:"gas-adjustment" json:"gas_adjustment"`

	// 0 means the daemon call has no deadline
	DaemonTimeout time.Duration `yaml:"daemon-timeout" json:"daemon_timeout"`

	MetricsTextfile string `yaml:"metrics-textfile" json:"metrics_textfile"`
}

// Default returns the config of the Osmosis testnet.
func Default() Config {
	return Config{
		Daemon:         DefaultDaemon,
		Node:           DefaultNode,
		ChainID:        DefaultChainID,
		Wallet:         DefaultWallet,
		Contracts:      DefaultContracts,
		AddressPrefix:  DefaultAddressPrefix,
		KeyringBackend: DefaultKeyringBackend,
		GasPrices:      DefaultGasPrices,
		Gas:            DefaultGas,
		GasAdjustment:  DefaultGasAdjustment,
	}
}

// Parse reads a yaml config on top of the defaults. A missing file is not
// an error.
func Parse(file string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read file %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, nil
}

// LoadEnv loads envFile, if present, into the process environment without
// overriding variables that are already set.
func LoadEnv(envFile string) error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("error loading env file %s: %w", envFile, err)
	}
	return nil
}

// ApplyEnv overrides fields with the OSMO_* environment variables.
func (c *Config) ApplyEnv() {
	overrides := []struct {
		key   string
		field *string
	}{
		{EnvDaemon, &c.Daemon},
		{EnvNode, &c.Node},
		{EnvChainID, &c.ChainID},
		{EnvWallet, &c.Wallet},
		{EnvContracts, &c.Contracts},
		{EnvKeyringBackend, &c.KeyringBackend},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && v != "" {
			*o.field = v
		}
	}
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"daemon", c.Daemon},
		{"node", c.Node},
		{"chain-id", c.ChainID},
		{"wallet", c.Wallet},
		{"contracts", c.Contracts},
	}
	for _, r := range required {
		if r.value == "" {
			return types.ErrInvalidConfig.Wrapf("%s must be set in the config", r.name)
		}
	}
	if c.DaemonTimeout < 0 {
		return types.ErrInvalidConfig.Wrapf("daemon-timeout must not be negative (daemon-timeout: %s)", c.DaemonTimeout)
	}
	return nil
}
