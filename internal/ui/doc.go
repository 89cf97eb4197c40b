// Package ui provides styled terminal output for the consultacep CLI.
//
// The components here follow a "print once and exit" pattern: the
// `lookup` and `config` commands render a header and a result box with
// Lipgloss and return. The interactive form lives in internal/form and
// shares this package's palette and field rendering.
//
// # Components
//
//   - Header: command banner with ordered parameters
//   - Result: success box with address fields, or failure box with the
//     user-facing message and troubleshooting tips
//   - Printer: writes components to an io.Writer at the terminal width
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Consulta de CEP", "consultacep lookup",
//	    ui.Field{Label: "CEP", Value: "01310-100"})
//	p.PrintResult(ui.NewAddressResult(addr))
//
// Empty address fields render as "Não informado".
package ui
