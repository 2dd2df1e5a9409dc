// Package cmd - config commands
package cmd

import (
	"github.com/spf13/cobra"

	"unit-converter/internal/config"
)

var showFormat string

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Get().Marshal("." + showFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file (.json or .yaml)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "unitconv.json"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		newWriter(cmd.OutOrStdout()).Success("wrote %s", path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().StringVarP(&showFormat, "format", "f", "yaml", "encoding (json, yaml)")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
