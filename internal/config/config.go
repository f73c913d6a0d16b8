// Package config defines the data structures related to configuration and
// includes functions for loading and checking the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/credit-portfolio-sim/pkg/constants"
	"github.com/iwvelando/credit-portfolio-sim/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables overriding config keys,
// e.g. PORTFOLIO_SIM_SIMULATION_SEED.
const EnvPrefix = "PORTFOLIO_SIM"

// Configuration holds all configuration for credit-portfolio-sim.
type Configuration struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
}

// SimulationConfig holds the portfolio size and generator seed.
type SimulationConfig struct {
	Contracts int   `yaml:"contracts"`
	Seed      int64 `yaml:"seed"`
}

// OutputConfig holds output locations and summary display options
type OutputConfig struct {
	PortfolioPath string `yaml:"portfolioPath,omitempty"`
	CashflowsPath string `yaml:"cashflowsPath,omitempty"`
	SummaryPath   string `yaml:"summaryPath,omitempty"` // empty disables the manifest
	Format        string `yaml:"format,omitempty"`      // pretty, yaml
	Currency      string `yaml:"currency,omitempty"`
	Preview       int    `yaml:"preview,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("simulation.contracts", constants.DefaultContracts)
	v.SetDefault("simulation.seed", constants.DefaultSeed)
	v.SetDefault("output.portfolioPath", constants.DefaultPortfolioPath)
	v.SetDefault("output.cashflowsPath", constants.DefaultCashflowsPath)
	v.SetDefault("output.summaryPath", constants.DefaultSummaryPath)
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.currency", constants.DefaultCurrency)
	v.SetDefault("output.preview", constants.DefaultPreviewRows)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys absent from the file keep their defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadOrDefault loads the configuration at configPath. A missing file is not
// an error: the defaults (and any environment overrides) are returned.
func LoadOrDefault(configPath string) (*Configuration, error) {
	if configPath != "" {
		_, err := os.Stat(configPath)
		if err == nil {
			return LoadConfiguration(configPath)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}
	return Defaults()
}

// Defaults returns the configuration used when no file is present.
func Defaults() (*Configuration, error) {
	return decode(newViper())
}

// Validate returns an error for settings a run cannot proceed with.
func (c *Configuration) Validate() error {
	if err := validation.ValidateContractCount(c.Simulation.Contracts); err != nil {
		return err
	}
	if c.Output.PortfolioPath == "" || c.Output.CashflowsPath == "" {
		return errors.New("portfolio and cash-flow output paths must be set")
	}
	return validation.ValidateOutputFormat(c.Output.Format)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	validator := validation.ConfigValidator{
		Contracts:     c.Simulation.Contracts,
		PortfolioPath: c.Output.PortfolioPath,
		CashflowsPath: c.Output.CashflowsPath,
		SummaryPath:   c.Output.SummaryPath,
		Currency:      c.Output.Currency,
	}
	return validator.ValidateAll()
}
