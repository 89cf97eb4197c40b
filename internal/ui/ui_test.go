package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/consultacep/internal/viacep"
)

func TestClampWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, MinTerminalWidth},
		{MinTerminalWidth - 1, MinTerminalWidth},
		{80, 80},
		{500, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Consulta de CEP", "consultacep lookup",
		Field{Label: "CEP", Value: "01310-100"},
		Field{Label: "Serviço", Value: "https://viacep.com.br/ws"},
	).SetWidth(80).Render()

	for _, part := range []string{"CONSULTA DE CEP", "consultacep lookup", "CEP:", "01310-100", "Serviço:"} {
		if !strings.Contains(out, part) {
			t.Errorf("header missing %q:\n%s", part, out)
		}
	}
	if strings.Index(out, "CEP:") > strings.Index(out, "Serviço:") {
		t.Error("params should render in the order given")
	}
}

func TestAddressResult(t *testing.T) {
	addr := &viacep.Address{CEP: "01310-100", Logradouro: "Avenida Paulista", Localidade: "São Paulo", UF: "SP"}
	out := NewAddressResult(addr).SetWidth(80).Render()

	for _, part := range []string{SuccessMarker, "Endereço Encontrado", "Avenida Paulista", "Bairro:", viacep.NotInformed} {
		if !strings.Contains(out, part) {
			t.Errorf("result missing %q:\n%s", part, out)
		}
	}
	if strings.Contains(out, "DDD:") {
		t.Error("absent DDD should not be shown")
	}
}

func TestFailureResult(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	r := NewFailureResult("Falha na consulta", cause, []string{"Verifique sua conexão"}).SetWidth(80)

	out := r.Render()
	if !strings.Contains(out, FailureMarker) || !strings.Contains(out, "connection refused") {
		t.Errorf("failure box missing error:\n%s", out)
	}
	if !strings.Contains(out, "Verifique sua conexão") {
		t.Errorf("failure box missing hint:\n%s", out)
	}

	out = r.WithMessage("Erro ao consultar CEP. Tente novamente.").Render()
	if !strings.Contains(out, "Tente novamente") || strings.Contains(out, "connection refused") {
		t.Errorf("message should replace the raw error:\n%s", out)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintHeader("Consulta de CEP", "consultacep lookup")
	p.PrintResult(NewSuccessResult("Endereço Encontrado", []Field{{Label: "CEP", Value: "01310-100"}}))
	p.PrintError("Falha na consulta", "", errors.New("boom"), nil)

	out := buf.String()
	for _, part := range []string{"CONSULTA DE CEP", "01310-100", "boom"} {
		if !strings.Contains(out, part) {
			t.Errorf("printer output missing %q", part)
		}
	}
	if p.Width() < MinTerminalWidth {
		t.Errorf("Width() = %d", p.Width())
	}
}

func TestPrinter_ErrorMessageReplacesCause(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintError("Falha na Consulta", "CEP não encontrado", errors.New("raw cause"), []string{"Confira os dígitos do CEP"})

	out := buf.String()
	if !strings.Contains(out, "CEP não encontrado") || strings.Contains(out, "raw cause") {
		t.Errorf("message should replace the raw error:\n%s", out)
	}
	if !strings.Contains(out, "Confira os dígitos do CEP") {
		t.Errorf("hints missing:\n%s", out)
	}
}
