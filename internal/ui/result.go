package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/consultacep/internal/viacep"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result represents a result box
type Result struct {
	Type            ResultType
	Title           string  // e.g., "Endereço Encontrado"
	Fields          []Field // Rendered in order
	Error           error   // Failure only
	Message         string  // Failure only; shown instead of Error when set
	Troubleshooting []string
	Width           int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, fields []Field) *Result {
	return &Result{
		Type:   ResultSuccess,
		Title:  title,
		Fields: fields,
		Width:  GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewAddressResult creates the success box for a found address
func NewAddressResult(addr *viacep.Address) *Result {
	return NewSuccessResult("Endereço Encontrado", AddressFields(addr))
}

// AddressFields converts an address to display fields
func AddressFields(addr *viacep.Address) []Field {
	lines := addr.Lines()
	fields := make([]Field, len(lines))
	for i, l := range lines {
		fields[i] = Field{Label: l.Label, Value: l.Value}
	}
	return fields
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// WithMessage sets the user-facing failure message
func (r *Result) WithMessage(message string) *Result {
	r.Message = message
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	if r.Type == ResultFailure {
		return r.renderFailure()
	}
	return r.renderSuccess()
}

func (r *Result) renderSuccess() string {
	width := ClampWidth(r.Width)

	lines := []string{
		"",
		SuccessTitleStyle.Render(fmt.Sprintf("   %s  %s", SuccessMarker, r.Title)),
		"",
	}
	lines = append(lines, RenderFields(r.Fields)...)
	lines = append(lines, "")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure() string {
	width := ClampWidth(r.Width)

	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("   %s  %s", FailureMarker, r.Title)),
		"",
	}

	switch {
	case r.Message != "":
		lines = append(lines, ErrorMessageStyle.Render("   "+r.Message), "")
	case r.Error != nil:
		lines = append(lines, ErrorMessageStyle.Render("   Erro: "+r.Error.Error()), "")
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshootingBox(width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderTroubleshootingBox(width int) string {
	lines := []string{
		TroubleshootingTitleStyle.Render("Sugestões:"),
		"",
	}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}
	return TroubleshootingBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// RenderFields renders labelled values one per line, dimming
// viacep.NotInformed
func RenderFields(fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		value := ResultValueStyle.Render(f.Value)
		if f.Value == viacep.NotInformed {
			value = MissingValueStyle.Render(f.Value)
		}
		out = append(out, ResultKeyStyle.Render("   "+f.Label+":")+" "+value)
	}
	return out
}
