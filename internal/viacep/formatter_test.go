package viacep

import (
	"strings"
	"testing"
)

func getSampleAddress() *Address {
	return &Address{
		CEP:         "01001-000",
		Logradouro:  "Praça da Sé",
		Complemento: "lado ímpar",
		Bairro:      "Sé",
		Localidade:  "São Paulo",
		UF:          "SP",
		DDD:         "11",
		IBGE:        "3550308",
		GIA:         "1004",
		SIAFI:       "7107",
	}
}

func TestOrNotInformed(t *testing.T) {
	if got := OrNotInformed(""); got != NotInformed {
		t.Errorf("OrNotInformed(\"\") = %q", got)
	}
	if got := OrNotInformed("   "); got != NotInformed {
		t.Errorf("OrNotInformed(blank) = %q", got)
	}
	if got := OrNotInformed("Sé"); got != "Sé" {
		t.Errorf("OrNotInformed(\"Sé\") = %q", got)
	}
}

func TestAddress_Lines(t *testing.T) {
	sparse := &Address{CEP: "01310-100", Logradouro: "Avenida Paulista", Localidade: "São Paulo", UF: "SP"}
	lines := sparse.Lines()

	want := []Line{
		{"CEP", "01310-100"},
		{"Logradouro", "Avenida Paulista"},
		{"Bairro", NotInformed},
		{"Cidade", "São Paulo"},
		{"Estado", "SP"},
	}
	if len(lines) != len(want) {
		t.Fatalf("Lines() returned %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %v, want %v", i, lines[i], want[i])
		}
	}

	full := getSampleAddress().Lines()
	if len(full) != 7 {
		t.Fatalf("full address should show complement and DDD, got %v", full)
	}
	if full[5].Label != "Complemento" || full[6] != (Line{"DDD", "11"}) {
		t.Errorf("optional lines = %v", full[5:])
	}
}

func TestAddress_FormatCompact(t *testing.T) {
	compact := getSampleAddress().FormatCompact()

	if strings.Contains(compact, "\n") {
		t.Errorf("FormatCompact() should be one line, got %q", compact)
	}
	want := "01001-000  Praça da Sé (lado ímpar), Sé - São Paulo/SP"
	if compact != want {
		t.Errorf("FormatCompact() = %q, want %q", compact, want)
	}

	empty := (&Address{CEP: "99999-999"}).FormatCompact()
	if !strings.Contains(empty, NotInformed) {
		t.Errorf("FormatCompact() of empty fields = %q", empty)
	}
}

func TestAddress_FormatDetailed(t *testing.T) {
	detailed := getSampleAddress().FormatDetailed()

	expectedParts := []string{
		"Endereço Encontrado",
		"CEP:",
		"Logradouro:",
		"Praça da Sé",
		"Complemento:",
		"DDD:",
		"IBGE:",
		"3550308",
	}
	for _, part := range expectedParts {
		if !strings.Contains(detailed, part) {
			t.Errorf("FormatDetailed() missing expected part: %s", part)
		}
	}

	if strings.Contains(detailed, "Região:") {
		t.Error("FormatDetailed() should skip absent extras")
	}
}
