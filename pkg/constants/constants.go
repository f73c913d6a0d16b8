// Package constants provides shared constants for the credit-portfolio-sim application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// BalanceEpsilon is the remaining principal at or below which a contract
	// is considered fully amortized.
	BalanceEpsilon = 1e-8
)

// Simulation defaults
const (
	// DefaultContracts is the number of contracts generated when none is configured
	DefaultContracts = 10000

	// DefaultSeed is the generator seed used when none is configured
	DefaultSeed int64 = 42

	// LargePortfolioThreshold is the contract count above which a warning is raised
	LargePortfolioThreshold = 1000000
)

// Output constants
const (
	// DefaultPortfolioPath is where the contract table is written
	DefaultPortfolioPath = "data/portifolio.csv"

	// DefaultCashflowsPath is where the cash-flow table is written
	DefaultCashflowsPath = "data/cashflows.csv"

	// DefaultSummaryPath is where the YAML run manifest is written
	DefaultSummaryPath = "reports/summary.yaml"

	// DefaultCurrency is the ISO code used to display amounts
	DefaultCurrency = "BRL"

	// DefaultPreviewRows is the number of head/tail rows shown by the summary
	DefaultPreviewRows = 5
)

// Summary format constants
const (
	// OutputFormatPretty is the human-readable summary format
	OutputFormatPretty = "pretty"

	// OutputFormatYAML prints the run manifest as YAML
	OutputFormatYAML = "yaml"
)

// Logging constants
const (
	// AppName tags every log entry
	AppName = "portfolio-sim"

	// DefaultLogLevel applies when neither logging.level nor -log-level is set
	DefaultLogLevel = "info"

	// DefaultLogFile is used when logging.outputFile names a directory
	DefaultLogFile = "portfolio-sim.log"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
