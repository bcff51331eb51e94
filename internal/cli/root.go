// Package cli wires the cobra commands to the transform pipeline.
package cli

import (
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/achuchra/ts-types-from-strapi/internal/config"
	"github.com/achuchra/ts-types-from-strapi/internal/utils"
)

var (
	cfgFile   string
	filterArg string
	watchMode bool
	verbose   bool
	quiet     bool
)

// rootCmd represents the base command: one transform from source to destination
var rootCmd = &cobra.Command{
	Use:   "ts-types-from-strapi <source> <destination>",
	Short: "Convert Strapi schema declarations into plain TypeScript interfaces",
	Long: `ts-types-from-strapi reads the contentTypes declaration file Strapi
generates for a project and writes plain TypeScript interfaces for its
content types: scalars become string/number/boolean, enumerations become
literal unions, relations reference the interface generated for their
target, and private attributes are dropped.

Examples:
  ts-types-from-strapi types/generated/contentTypes.d.ts src/types/strapi.ts
  ts-types-from-strapi --filter 'Api*' schema.d.ts api-types.ts
  ts-types-from-strapi --watch schema.d.ts types.ts`,
	Args: cobra.ExactArgs(2),
	RunE: runRoot,
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .ts-types-from-strapi.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only report errors")
	rootCmd.PersistentFlags().StringVar(&filterArg, "filter", "", "glob restricting which interfaces are emitted (e.g. 'Api*')")

	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "regenerate whenever the source file changes")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	runner, err := buildRunner()
	if err != nil {
		return err
	}

	source, destination := args[0], args[1]
	if watchMode {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runner.Watch(ctx, source, destination)
	}

	if err := runner.Run(source, destination); err != nil {
		return err
	}
	runner.ReportSummary()
	return nil
}

// buildRunner resolves configuration, applies flag overrides, and wires up
// logging and diagnostics.
func buildRunner() (*Runner, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if filterArg != "" {
		cfg.Filter = filterArg
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	configureLogging(cfg)

	return NewRunner(cfg, newDiagnostics(cfg))
}

// newDiagnostics picks the diagnostic output for the run. The quiet and
// verbose flags win over the configured log level.
func newDiagnostics(cfg *config.Config) *utils.DiagnosticSystem {
	switch {
	case quiet:
		return utils.NewQuietDiagnostics()
	case verbose:
		return utils.NewVerboseDiagnostics()
	}
	return utils.NewDiagnosticSystem(diagnosticLevel(cfg))
}

// configureLogging sets the global structured logger the parsing layers use
// for per-line traces. Flags win over the configured level.
func configureLogging(cfg *config.Config) {
	logLevel, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logLevel = log.InfoLevel
	}
	if verbose && logLevel < log.DebugLevel {
		logLevel = log.DebugLevel
	}
	if quiet {
		logLevel = log.ErrorLevel
	}
	log.SetLevel(logLevel)
}

// diagnosticLevel maps the configured log level onto the diagnostic output
// level.
func diagnosticLevel(cfg *config.Config) utils.DiagnosticLevel {
	logLevel, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return utils.DiagnosticInfo
	}
	switch {
	case logLevel >= log.DebugLevel:
		return utils.DiagnosticDebug
	case logLevel == log.InfoLevel:
		return utils.DiagnosticInfo
	case logLevel == log.WarnLevel:
		return utils.DiagnosticWarn
	default:
		return utils.DiagnosticError
	}
}
