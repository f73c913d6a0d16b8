package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/iwvelando/credit-portfolio-sim/internal/config"
	"github.com/iwvelando/credit-portfolio-sim/internal/simulator"
	"github.com/iwvelando/credit-portfolio-sim/pkg/constants"
	"github.com/iwvelando/credit-portfolio-sim/pkg/output"
	"github.com/iwvelando/credit-portfolio-sim/pkg/report"
	"go.uber.org/zap"
)

type generateCmd struct {
	configPath string
	contracts  int
	seed       int64
	logLevel   string
	format     string
	preview    int
	outDir     string
}

func (*generateCmd) Name() string { return "generate" }

func (*generateCmd) Synopsis() string {
	return "simulates a synthetic credit portfolio and writes its cash-flow tables"
}

func (*generateCmd) Usage() string {
	return `generate [-config <file>] [-contracts <n>] [-seed <n>] [-format pretty|yaml]

  Draws a synthetic portfolio of installment, payroll and card contracts,
  projects their monthly cash flows with defaults and recoveries, and writes
  the portfolio and cash-flow tables as CSV plus a YAML run manifest.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	f.IntVar(&c.contracts, "contracts", constants.DefaultContracts, "number of contracts to generate")
	f.Int64Var(&c.seed, "seed", constants.DefaultSeed, "random generator seed")
	f.StringVar(&c.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	f.StringVar(&c.format, "format", "", "summary format override: pretty, yaml")
	f.IntVar(&c.preview, "preview", constants.DefaultPreviewRows, "head/tail rows shown in the pretty summary")
	f.StringVar(&c.outDir, "out-dir", "", "directory prefixed to every output path")
}

// applyOverrides copies explicitly set flags onto the loaded configuration.
func (c *generateCmd) applyOverrides(f *flag.FlagSet, conf *config.Configuration) {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "contracts":
			conf.Simulation.Contracts = c.contracts
		case "seed":
			conf.Simulation.Seed = c.seed
		case "preview":
			conf.Output.Preview = c.preview
		}
	})
	if c.format != "" {
		conf.Output.Format = c.format
	}
	if c.outDir != "" {
		conf.Output.PortfolioPath = joinOut(c.outDir, conf.Output.PortfolioPath)
		conf.Output.CashflowsPath = joinOut(c.outDir, conf.Output.CashflowsPath)
		if conf.Output.SummaryPath != "" {
			conf.Output.SummaryPath = joinOut(c.outDir, conf.Output.SummaryPath)
		}
	}
}

func (c *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", c.configPath, err)
		return subcommands.ExitFailure
	}
	c.applyOverrides(f, conf)

	logger, err := initializeLogger(conf.Logging, c.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return subcommands.ExitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(logger, conf, os.Stdout); err != nil {
		logger.Error("failed to generate portfolio",
			zap.String("op", "main.generate"),
			zap.Error(err),
		)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// joinOut prefixes relative output paths with dir.
func joinOut(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// run simulates, exports and summarizes one portfolio according to conf.
func run(logger *zap.Logger, conf *config.Configuration, stdout io.Writer) error {
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.run"),
		)
	}

	result, err := simulator.Simulate(logger, conf.Simulation.Contracts, conf.Simulation.Seed)
	if err != nil {
		return fmt.Errorf("failed to simulate portfolio: %w", err)
	}

	if err := output.ExportTables(logger, result, conf.Output.PortfolioPath, conf.Output.CashflowsPath); err != nil {
		return fmt.Errorf("failed to export tables: %w", err)
	}

	summary := report.Summarize(result)
	if conf.Output.SummaryPath != "" {
		err := output.WriteFile(conf.Output.SummaryPath, func(w io.Writer) error {
			return report.WriteYAML(w, summary)
		})
		if err != nil {
			return fmt.Errorf("failed to write run manifest: %w", err)
		}
		logger.Info("wrote run manifest",
			zap.String("op", "main.run"),
			zap.String("path", conf.Output.SummaryPath),
			zap.String("runId", summary.RunID),
		)
	}

	switch conf.Output.Format {
	case constants.OutputFormatYAML:
		return report.WriteYAML(stdout, summary)
	default:
		output.PrettySummary(stdout, summary, result, conf.Output.Currency, conf.Output.Preview)
	}
	return nil
}
