package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/consultacep/internal/config"
	"github.com/muurk/consultacep/internal/form"
	"github.com/muurk/consultacep/internal/httpapi"
	"github.com/muurk/consultacep/internal/logging"
	"github.com/muurk/consultacep/internal/lookup"
	"github.com/muurk/consultacep/internal/telemetry"
	"github.com/muurk/consultacep/internal/ui"
	"github.com/muurk/consultacep/internal/viacep"
)

// Flags shared by every command
var (
	configPath    string
	baseURL       string
	lookupTimeout time.Duration
	logLevel      string
	otlpEndpoint  string
)

// Command flags
var (
	formCEP      string
	outputFormat string
	serveAddr    string
	forceInit    bool
)

// errLookupFailed is returned after the failure box has been printed
var errLookupFailed = errors.New("lookup failed")

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "ViaCEP endpoint (overrides base_url)")
	rootCmd.PersistentFlags().DurationVar(&lookupTimeout, "timeout", 0, "Lookup timeout, e.g. 5s (overrides lookup_timeout)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC collector host:port (enables tracing)")

	rootCmd.Flags().StringVar(&formCEP, "cep", "", "Pre-fill the form with a CEP")

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if flags.Changed("timeout") {
		cfg.LookupTimeout = lookupTimeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("otlp-endpoint") {
		cfg.OTLPEndpoint = otlpEndpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newController wires a ViaCEP client to a fresh controller
func newController(cfg *config.Config) *lookup.Controller {
	client := viacep.NewClientWithURL(cfg.BaseURL)
	client.SetTimeout(cfg.LookupTimeout)

	ctrl := lookup.New(client)
	ctrl.SetTimeout(cfg.LookupTimeout)
	return ctrl
}

// startTelemetry enables tracing when an OTLP endpoint is configured.
// The returned func flushes pending spans.
func startTelemetry(ctx context.Context, cfg *config.Config) (func(), error) {
	shutdown, err := telemetry.Init(ctx, cfg.OTLPEndpoint, cfg.OTLPInsecure)
	if err != nil {
		return nil, err
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logging.Warn("Failed to flush traces", zap.Error(err))
		}
	}, nil
}

// effectiveLogLevel mirrors logging.Initialize: an empty level defers to the environment
func effectiveLogLevel(level string) string {
	if level != "" {
		return level
	}
	return os.Getenv(logging.LogLevelEnvVar)
}

// formCmd opens the interactive form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive lookup form",
	Long: `Open a full-screen form where the CEP is masked as XXXXX-XXX while typing.

Press Enter to look the CEP up, Esc to clear the form and Ctrl+C to quit.
Logs are written to a file because the form owns the terminal.`,
	Example: `  # Open the form (also the default with no command)
  consultacep form
  consultacep

  # Pre-fill the field
  consultacep form --cep 01310-100`,
	Args: cobra.NoArgs,
	RunE: runForm,
}

func init() {
	formCmd.Flags().StringVar(&formCEP, "cep", "", "Pre-fill the form with a CEP")
}

func runForm(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return fmt.Errorf("the interactive form needs a terminal; use 'consultacep lookup <cep>' instead")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if level := effectiveLogLevel(cfg.LogLevel); level != "" {
		logFile := cfg.LogFile
		if logFile == "" {
			if logFile, err = config.DefaultLogFile(); err != nil {
				return err
			}
		}
		if err := os.MkdirAll(filepath.Dir(logFile), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		if err := logging.InitializeWithOutput(level, logFile); err != nil {
			return err
		}
	}
	defer logging.Sync()

	flush, err := startTelemetry(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer flush()

	return form.Run(cmd.Context(), newController(cfg), formCEP)
}

// lookupCmd performs one lookup and prints the address
var lookupCmd = &cobra.Command{
	Use:   "lookup <cep>",
	Short: "Look up a CEP and print the address",
	Long: `Look up a single CEP and print the address.

The exit status is non-zero when the CEP is incomplete, does not exist,
or the service could not be reached.`,
	Example: `  # Detailed output (default)
  consultacep lookup 01001-000

  # One line per address, handy in scripts
  consultacep lookup 01001000 --format compact

  # Raw ViaCEP fields
  consultacep lookup 01001000 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

func runLookup(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case "detailed", "compact", "json":
	default:
		return fmt.Errorf("unknown format %q (use detailed, compact or json)", outputFormat)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stdout carries the result
	if err := logging.InitializeWithOutput(cfg.LogLevel, "stderr"); err != nil {
		return err
	}
	defer logging.Sync()

	flush, err := startTelemetry(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer flush()

	ctrl := newController(cfg)
	code := ctrl.Input(args[0])

	out := cmd.OutOrStdout()
	printer := ui.NewPrinter(out)

	// Boxes only on a terminal; piped detailed output stays plain text
	styled := outputFormat == "detailed" && ui.IsTerminal()
	if styled {
		printer.PrintHeader("Consulta de CEP", "lookup",
			ui.Field{Label: "CEP", Value: code.Display()},
			ui.Field{Label: "Serviço", Value: cfg.BaseURL},
		)
	}

	state := ctrl.Lookup(cmd.Context())

	if state.Phase != lookup.Success {
		return printFailure(printer, state, styled)
	}

	switch outputFormat {
	case "compact":
		fmt.Fprintln(out, state.Address.FormatCompact())
	case "json":
		data, err := json.MarshalIndent(state.Address, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		if styled {
			printer.PrintResult(ui.NewAddressResult(state.Address))
		} else {
			fmt.Fprint(out, state.Address.FormatDetailed())
		}
	}

	return nil
}

// printFailure reports a failed lookup in the selected format
func printFailure(printer *ui.Printer, state lookup.State, styled bool) error {
	message := state.Message()
	if message == "" {
		message = fmt.Sprintf("unexpected state %s", state)
	}

	if !styled {
		return errors.New(message)
	}

	cause := state.Err
	if state.Kind == lookup.InvalidFormat {
		cause = viacep.ErrInvalidCEP
	}

	printer.PrintError("Falha na Consulta", message, state.Err, viacep.TroubleshootingHints(cause))
	return errLookupFailed
}

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups over HTTP",
	Long: `Start an HTTP API answering GET /cep/{cep} with the ViaCEP address.

Responses:
  200  address found
  404  CEP does not exist
  422  CEP does not have 8 digits
  502  ViaCEP could not be reached

The server also exposes /healthz and /version, and shuts down gracefully
on SIGINT or SIGTERM.`,
	Example: `  # Listen on the configured address (default :8080)
  consultacep serve

  # Custom address with debug logs
  consultacep serve --addr 127.0.0.1:9000 --log-level debug

  # Export traces to a local collector
  consultacep serve --otlp-endpoint localhost:4317`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides serve_addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.ServeAddr = serveAddr
	}

	// A server is not silent by default
	level := effectiveLogLevel(cfg.LogLevel)
	if level == "" {
		level = "info"
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flush, err := startTelemetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer flush()

	client := viacep.NewClientWithURL(cfg.BaseURL)
	client.SetTimeout(cfg.LookupTimeout)

	logging.Info("Starting server",
		zap.String("addr", cfg.ServeAddr),
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("lookup_timeout", cfg.LookupTimeout),
	)

	srv := httpapi.NewServer(cfg.ServeAddr, httpapi.NewHandler(client, cfg.LookupTimeout))
	return srv.Run(ctx)
}

// configCmd groups the config file subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and command-line overrides
have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Init(configPath, forceInit)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
		return nil
	},
}
