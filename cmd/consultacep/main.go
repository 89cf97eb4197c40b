// Consultacep looks up Brazilian postal codes (CEP) on ViaCEP.
//
// It provides an interactive form that masks the CEP as it is typed,
// a one-shot lookup command for scripts, and a small HTTP API.
//
// Usage:
//
//	consultacep [command] [flags]
//
// Running without arguments opens the interactive form.
// See 'consultacep --help' for available commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/consultacep/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "consultacep",
	Short: "Consulta de CEP via ViaCEP",
	Long: `Look up Brazilian postal codes (CEP) using the ViaCEP web service.

The CEP may be typed with or without the hyphen; anything that is not a
digit is ignored and at most 8 digits are kept.

If no command is specified, the interactive form will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the form when no subcommand is provided
		return runForm(cmd, args)
	},
}

var versionJSON bool

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionJSON {
			data, err := json.MarshalIndent(version.Get(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		fmt.Fprintf(out, "consultacep %s\n", version.Full())
		return nil
	},
}
