package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/consultacep/internal/ui"
	"github.com/muurk/consultacep/internal/urls"
	"github.com/muurk/consultacep/internal/version"
)

// Application branding
const (
	AppName  = "CONSULTA DE CEP"
	Subtitle = "Digite um CEP para consultar o endereço"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ui.WarningColor)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ui.ErrorColor).
			Bold(true)

	ResultTitleStyle = lipgloss.NewStyle().
				Foreground(ui.SuccessColor).
				Bold(true)

	TipsTitleStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Bold(true)

	TipsStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)
)

// usageTips is the "Como usar" panel
var usageTips = []string{
	"Digite um CEP válido de 8 dígitos",
	"Use o formato XXXXX-XXX ou apenas números",
	"Aguarde a consulta ser processada",
	"Os dados serão exibidos automaticamente",
}

// inputBoxStyle returns the border around the CEP field; red after a failure
func inputBoxStyle(width int, failed bool) lipgloss.Style {
	border := ui.PrimaryColor
	if failed {
		border = ui.ErrorColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)
}

// resultBoxStyle returns the border around a found address
func resultBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ui.SuccessColor).
		Padding(0, 1).
		Width(width)
}

func renderTips(width int) string {
	lines := []string{TipsTitleStyle.Render("Como usar:")}
	for _, tip := range usageTips {
		lines = append(lines, TipsStyle.Render("• "+tip))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.MutedColor).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func buildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(urls.Repository)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderContainer wraps a screen in the bordered full-terminal panel with
// a header line and a help footer pinned below the content.
func renderContainer(content, footer string, width, height int) string {
	header := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(width-4).
		Padding(0, 1).
		Render(buildHeaderContent())

	body := lipgloss.NewStyle().
		Width(width - 4).
		Padding(1, 2).
		Render(content)

	foot := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(width-4).
		Padding(0, 1).
		Render(footer)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(width - 2).
		AlignVertical(lipgloss.Top).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body, foot))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bordered)
}
