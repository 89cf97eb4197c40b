package viacep

import (
	"fmt"
	"strings"
)

// NotInformed replaces empty address fields on display
const NotInformed = "Não informado"

// OrNotInformed returns value, or NotInformed when it is blank
func OrNotInformed(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotInformed
	}
	return value
}

// Line is one labelled address value
type Line struct {
	Label string
	Value string
}

// Lines returns the address the way it is shown to the user. Street,
// district, city and state always appear, defaulting to NotInformed;
// complement and area code appear only when present.
func (a *Address) Lines() []Line {
	lines := []Line{
		{"CEP", a.CEP},
		{"Logradouro", OrNotInformed(a.Logradouro)},
		{"Bairro", OrNotInformed(a.Bairro)},
		{"Cidade", OrNotInformed(a.Localidade)},
		{"Estado", OrNotInformed(a.UF)},
	}
	if a.Complemento != "" {
		lines = append(lines, Line{"Complemento", a.Complemento})
	}
	if a.DDD != "" {
		lines = append(lines, Line{"DDD", a.DDD})
	}
	return lines
}

// FormatCompact returns the address on a single line
func (a *Address) FormatCompact() string {
	street := OrNotInformed(a.Logradouro)
	if a.Complemento != "" {
		street += " (" + a.Complemento + ")"
	}
	return fmt.Sprintf("%s  %s, %s - %s/%s",
		a.CEP, street, OrNotInformed(a.Bairro), OrNotInformed(a.Localidade), OrNotInformed(a.UF))
}

// FormatDetailed returns one labelled line per field, including the
// optional registry codes when ViaCEP sent them
func (a *Address) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("Endereço Encontrado\n")
	for _, l := range a.Lines() {
		fmt.Fprintf(&b, "  %-12s %s\n", l.Label+":", l.Value)
	}

	extras := []Line{
		{"IBGE", a.IBGE},
		{"GIA", a.GIA},
		{"SIAFI", a.SIAFI},
		{"Região", a.Regiao},
	}
	for _, l := range extras {
		if l.Value != "" {
			fmt.Fprintf(&b, "  %-12s %s\n", l.Label+":", l.Value)
		}
	}

	return b.String()
}
