package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verdante/import-service/config"
	"github.com/verdante/import-service/internal/database"
	"github.com/verdante/import-service/internal/parsers/xlsx"
	"github.com/verdante/import-service/internal/pipeline"
	"github.com/verdante/import-service/internal/store"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "import-service",
	Short: "Import Service CLI - bulk product and blog import tool",
	Long: `A CLI tool for importing storefront catalog data. Product spreadsheets (CSV, TSV,
XLSX) and WordPress exports are normalized into canonical records and written to the
database one record at a time; duplicates and failures are reported without stopping the run.`,
	PersistentPreRunE: persistentPreRun,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// parse and dry-run imports work without config
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

// persistentPreRun runs before each command and initializes the logger
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}
	logger = initLogger()
	return nil
}

func initLogger() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if cfg != nil && cfg.Logging.Level != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsedLevel
		}
	}

	// Logs go to stderr so JSON output on stdout stays clean
	var output io.Writer
	if cfg != nil && cfg.Logging.Format == "json" {
		output = os.Stderr
	} else {
		noColor := false
		if cfg != nil {
			noColor = cfg.Logging.NoColor
		}
		output = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}
	}

	log := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &log
}

// initDatabase connects the shared pool using the loaded config
func initDatabase(ctx context.Context) error {
	if cfg == nil {
		return fmt.Errorf("config required but not loaded")
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}

	if err := database.Connect(ctx, database.PoolConfig{
		URL:             cfg.Database.URL,
		MaxConns:        cfg.Database.MaxConnections,
		MinConns:        cfg.Database.MinConnections,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	}); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info().Msg("Database connected")
	return nil
}

// newPipeline builds a pipeline over inserter with the configured sheet selection
func newPipeline(inserter store.Inserter) *pipeline.Pipeline {
	var opts []pipeline.Option
	if cfg != nil && cfg.Import.XLSXSheet != "" {
		opts = append(opts, pipeline.WithXLSXOptions(xlsx.Options{Sheet: cfg.Import.XLSXSheet}))
	}
	return pipeline.New(inserter, *logger, opts...)
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
