// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/ccs-extract/internal/config"
	"fjacquet/ccs-extract/internal/container"
	"fjacquet/ccs-extract/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Debug  bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the configuration assembled for the current invocation:
	// defaults, config file, CCS_* environment and explicit flags.
	AppConfig *config.Config

	// AppContainer is the wired dependency graph commands pull their
	// collaborators from. It is built once in PersistentPreRunE.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ccs-extract",
		Short: "Extract and categorize credit card statement transactions.",
		Long: `ccs-extract pulls itemized transactions out of credit card statement
PDFs, normalizes merchant names and assigns a spending category to every
transaction before writing the result to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ccs-extract!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			applyFlagOverrides(cfg)
			configureRootLogger(cfg)
			AppConfig = cfg

			appContainer, err := container.NewContainer(cfg)
			if err != nil {
				return err
			}
			AppContainer = appContainer
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close application container")
				}
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific categorize command flags
	Description string
	Amount      string
	Date        string

	// Configuration override flags
	PatternsFile string
	RulesFile    string
	LogLevel     string
	LogFormat    string
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (or directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for batch)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Debug, "debug", false, "Write the raw extracted text next to the input file")
	Cmd.PersistentFlags().StringVar(&PatternsFile, "patterns", "", "Custom merchant pattern and category config file")
	Cmd.PersistentFlags().StringVar(&RulesFile, "rules", "", "Conditional categorization rules file")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&LogFormat, "log-format", "", "Log format (text or json)")
}

// applyFlagOverrides folds explicit command line flags into the loaded
// configuration. Flags win over config file and environment values.
func applyFlagOverrides(cfg *config.Config) {
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}
	if LogFormat != "" {
		cfg.Log.Format = LogFormat
	}
	if PatternsFile != "" {
		cfg.Files.Patterns = PatternsFile
	}
	if RulesFile != "" {
		cfg.Files.Rules = RulesFile
	}
}

// configureRootLogger applies the final configuration to the shared command
// logger. Invalid levels keep whatever ConfigureLogging already set.
func configureRootLogger(cfg *config.Config) {
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		Log.SetLevel(level)
	}
	if cfg.Log.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// GetContainer returns the container wired for the current invocation, or
// nil when PersistentPreRunE has not run.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the active configuration, or nil before initialization.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogrusAdapter returns the active logger behind the logging
// abstraction, for code that takes a logging.Logger.
func GetLogrusAdapter() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return logging.NewLogrusAdapterFromLogger(Log)
}
