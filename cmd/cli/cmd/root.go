// Package cmd provides the CLI commands for unitconv.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"unit-converter/core/output"
	"unit-converter/core/ui"
	"unit-converter/internal/config"
	"unit-converter/internal/errors"
	"unit-converter/internal/logging"
)

// Version is the tool version, overridden at build time with -ldflags
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Convert values between units of length, weight, temperature, volume and time",
	Long: `unitconv converts numeric values between units within five domains:
length, weight, temperature, volume and time.

Results are printed with 8 decimal places. The quick reference table converts
0.1, 1, 10, 100 and 1000 between the chosen units with 2 decimal places.

Examples:
  unitconv convert 10 Miles Kilometers
  unitconv convert --domain temperature -- -40 Celsius Fahrenheit
  unitconv convert --domain volume --table 1 "Gallons (US)" Liters
  unitconv table --domain weight Pounds Kilograms
  unitconv units time`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		newWriter(rootCmd.ErrOrStderr()).Error("An error occurred: %s", userMessage(err))
	}
	logging.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.json, .yaml, .toml or .hcl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	config.Set(cfg)

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			newWriter(cmd.ErrOrStderr()).Warning("config file %s not found, using defaults", cfgFile)
		}
	}

	// Initialize logging
	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		return errors.Config("failed to initialize logging", err)
	}
	return nil
}

// userMessage is the one line shown for a failed command
func userMessage(err error) string {
	if e, ok := errors.As(err); ok {
		if e.Cause != nil && e.HasType(errors.TypeConfig) {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// colorDisabled combines the flag and the configuration
func colorDisabled() bool {
	return noColor || config.Get().Output.NoColor
}

// formatUsage is the --format flag help, listing the registered formats
func formatUsage() string {
	all := output.NewDefaultRegistry(true).All()
	names := make([]string, 0, len(all))
	for _, f := range all {
		names = append(names, string(f.Format()))
	}
	return "output format (" + strings.Join(names, ", ") + ")"
}

// newWriter returns a UI writer honouring --no-color and --verbose
func newWriter(out io.Writer) *ui.Writer {
	w := ui.NewWriter(out, colorDisabled())
	if verbose {
		w.SetVerbosity(2)
	}
	return w
}

// render writes report in the named format, falling back to the configured default
func render(cmd *cobra.Command, report *output.Report, formatName string) error {
	if formatName == "" {
		formatName = config.Get().Output.DefaultFormat
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	formatter, err := output.NewDefaultRegistry(colorDisabled()).Get(format)
	if err != nil {
		return err
	}
	return formatter.Render(cmd.OutOrStdout(), report)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "unitconv version %s\n", Version)
	},
}
