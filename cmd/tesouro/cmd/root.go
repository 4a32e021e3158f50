package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rpgo/treasury-calculator/internal/calculation"
	"github.com/rpgo/treasury-calculator/internal/config"
	"github.com/rpgo/treasury-calculator/internal/domain"
	"github.com/rpgo/treasury-calculator/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Environment variables read after the optional .env file is loaded.
const (
	envLogLevel      = "TESOURO_LOG_LEVEL"
	envFormat        = "TESOURO_FORMAT"
	envCatalog       = "TESOURO_CATALOG"
	envReferenceRate = "TESOURO_REFERENCE_RATE"
	envInflationRate = "TESOURO_INFLATION_RATE"
)

var (
	envFile       string
	logLevel      string
	outputFormat  string
	catalogFile   string
	referenceRate float64
	inflationRate float64
	debug         bool

	engine     *calculation.CalculationEngine
	zapLogger  *logger.ZapLogger
	loggerSync = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "tesouro",
	Short: "Treasury bond calculator",
	Long: `tesouro values Brazilian treasury bonds (Prefixado, IPCA+, Selic) after
income tax and IOF: at maturity, if sold today at the market rate, and
reinvested in another bond from the catalog.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { loggerSync() },
}

// Execute runs the root command, cancelling on SIGINT or SIGTERM.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with TESOURO_* defaults")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (env "+envLogLevel+")")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "output format (env "+envFormat+")")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "bond catalog file, YAML or TOML (env "+envCatalog+")")
	rootCmd.PersistentFlags().Float64Var(&referenceRate, "reference-rate", 0, "Selic reference rate in % a year (env "+envReferenceRate+")")
	rootCmd.PersistentFlags().Float64Var(&inflationRate, "inflation-rate", 0, "expected IPCA inflation in % a year (env "+envInflationRate+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every calculation step")
}

// setup loads the .env file, applies environment defaults to unset flags and
// builds the logger and engine.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", envFile, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		logLevel = os.Getenv(envLogLevel)
	}
	if !flags.Changed("format") {
		if v := os.Getenv(envFormat); v != "" {
			outputFormat = v
		}
	}
	if !flags.Changed("catalog") {
		catalogFile = os.Getenv(envCatalog)
	}
	if !flags.Changed("reference-rate") {
		if err := floatFromEnv(envReferenceRate, &referenceRate); err != nil {
			return err
		}
	}
	if !flags.Changed("inflation-rate") {
		if err := floatFromEnv(envInflationRate, &inflationRate); err != nil {
			return err
		}
	}

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if debug {
		level = logger.Debug
	}
	zapLogger, loggerSync, err = logger.NewZapLogger(level)
	if err != nil {
		return err
	}

	engine = calculation.NewCalculationEngine()
	engine.SetLogger(zapLogger.With("command", cmd.Name()))
	engine.Debug = debug
	return nil
}

func floatFromEnv(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func rateContext() domain.RateContext {
	return domain.RateContext{
		ReferenceRate:     decimal.NewFromFloat(referenceRate),
		ExpectedInflation: decimal.NewFromFloat(inflationRate),
	}
}

// loadCatalog reads --catalog when set, otherwise the built-in list.
func loadCatalog() ([]domain.BondRecord, error) {
	if catalogFile == "" {
		zapLogger.Debugf("using built-in bond catalog")
		return config.DefaultCatalog(), nil
	}
	bonds, err := config.NewInputParser().LoadCatalog(catalogFile)
	if err != nil {
		return nil, err
	}
	zapLogger.Debugf("loaded %d bonds from %s", len(bonds), catalogFile)
	return bonds, nil
}
