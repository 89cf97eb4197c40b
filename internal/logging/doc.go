// Package logging provides structured logging for consultacep.
//
// This package wraps a global zap logger with convenience functions. It is
// silent unless a level is requested, either through --log-level or the
// CONSULTACEP_LOG_LEVEL environment variable, so the interactive form and
// the styled CLI output are never interleaved with log lines.
//
// # Log Levels
//
//   - Debug: rejected submits, discarded stale outcomes
//   - Info: lookups submitted and finished, HTTP requests served
//   - Warn: lookups that ended in Failed
//   - Error: startup failures
//
// # Lookup Logging
//
//	logging.LogLookup("01310100", generation)
//	logging.LogOutcome("01310100", generation, "failed", "not_found", err)
//
// # Configuration
//
//	if err := logging.InitializeWithOutput("debug", "/tmp/consultacep.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize is meant
// to be called once at startup.
package logging
