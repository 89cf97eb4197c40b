// Package config provides user configuration management for consultacep.
//
// This package manages a YAML configuration file holding the ViaCEP
// endpoint, the per-lookup timeout, logging preferences, the listen
// address of the HTTP API and the OpenTelemetry collector traces are
// exported to. The file follows OS-specific conventions for its location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/consultacep/config.yaml or $HOME/.config/consultacep/config.yaml
//   - macOS: $HOME/.config/consultacep/config.yaml
//   - Windows: %LOCALAPPDATA%\consultacep\config.yaml
//
// # File Format
//
//	version: 1
//	base_url: https://viacep.com.br/ws
//	lookup_timeout: 10s
//	log_level: info
//	serve_addr: :8080
//	otlp_endpoint: localhost:4317
//	otlp_insecure: true
//
// A missing file is not an error; Load returns the defaults. Missing
// fields in an existing file take their default values.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.LookupTimeout = 5 * time.Second
//	if err := cfg.Save(""); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Save is protected by a mutex and writes atomically via a temp file.
package config
