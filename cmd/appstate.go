package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"cosmossdk.io/log"

	"github.com/thec00n/osmosis-cli-wrapper/config"
	"github.com/thec00n/osmosis-cli-wrapper/cosmos"
	"github.com/thec00n/osmosis-cli-wrapper/metrics"
	"github.com/thec00n/osmosis-cli-wrapper/osmosis"
	"github.com/thec00n/osmosis-cli-wrapper/registry"
)

// EnvFile is loaded, when present, before the OSMO_* variables are read.
const EnvFile = ".env"

// appState is the modifiable state of the application.
type AppState struct {
	Config *config.Config

	ConfigPath string

	Debug bool

	LogLevel string

	LogJSON bool

	Logger log.Logger

	Metrics *metrics.PromMetrics

	// nil runs the daemon on the local machine
	Runner cosmos.Runner

	registry *registry.Registry
}

func NewAppState() *AppState {
	return &AppState{}
}

// InitAppState checks if a logger and config are present. If not, it adds them to the AppState
func (a *AppState) InitAppState() error {
	if a.Logger == nil {
		a.InitLogger()
	}
	if a.Metrics == nil {
		a.Metrics = metrics.InitPromMetrics()
	}
	if a.Config == nil {
		return a.loadConfigFile()
	}
	return nil
}

func (a *AppState) InitLogger() {
	// info level is default
	level := zerolog.InfoLevel
	switch a.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// a.Debug overrides a.loglevel
	if a.Debug {
		level = zerolog.DebugLevel
	}

	// stdout carries command output
	opts := []log.Option{log.LevelOption(level)}
	if a.LogJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	a.Logger = log.NewLogger(os.Stderr, opts...)
}

// loadConfigFile loads a configuration into the AppState. It uses the AppState ConfigPath
// to determine file path to config. Environment overrides are applied on top.
func (a *AppState) loadConfigFile() error {
	if a.Logger == nil {
		a.InitLogger()
	}
	cfg, err := config.Parse(a.ConfigPath)
	if err != nil {
		return fmt.Errorf("unable to parse config file %s: %w", a.ConfigPath, err)
	}
	a.Logger.Debug("Successfully parsed config file", "location", a.ConfigPath)

	if err := config.LoadEnv(EnvFile); err != nil {
		return err
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.Config = &cfg
	return nil
}

// Registry loads the contracts registry once per run.
func (a *AppState) Registry() (*registry.Registry, error) {
	if a.registry != nil {
		return a.registry, nil
	}
	reg, err := registry.Load(a.Config.Contracts)
	if err != nil {
		return nil, err
	}
	for _, name := range reg.Skipped() {
		a.Logger.Debug("Skipping contract with a non string address", "name", name)
	}
	for _, err := range reg.Validate(a.Config.AddressPrefix) {
		a.Logger.Info("Suspicious contract address", "err", err)
	}
	a.Logger.Debug("Loaded contracts", "location", a.Config.Contracts, "count", reg.Len())

	a.registry = reg
	return reg, nil
}

// Chain wires the daemon provider and the registry into an osmosis client.
func (a *AppState) Chain() (*osmosis.Osmosis, error) {
	reg, err := a.Registry()
	if err != nil {
		return nil, err
	}
	cc := cosmos.NewProvider(a.Runner, a.Config.Daemon, a.Config.DaemonTimeout, a.Logger, a.Metrics)
	return osmosis.NewChain(*a.Config, cc, reg, a.Logger), nil
}

// writeMetrics dumps the daemon metrics for the node exporter textfile collector.
func (a *AppState) writeMetrics() {
	if a.Config == nil || a.Config.MetricsTextfile == "" {
		return
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsTextfile); err != nil {
		a.Logger.Error("Unable to write metrics", "location", a.Config.MetricsTextfile, "err", err)
	}
}
