package cep

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var displayPattern = regexp.MustCompile(`^\d{0,5}(-\d{0,3})?$`)

// maskAlphabet biases generated input towards what users actually type
var maskAlphabet = []string{"0", "1", "5", "9", "-", ".", " ", "a"}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		digits   string
		display  string
		complete bool
	}{
		{name: "empty", raw: "", digits: "", display: "", complete: false},
		{name: "three digits", raw: "013", digits: "013", display: "013", complete: false},
		{name: "five digits no hyphen", raw: "01310", digits: "01310", display: "01310", complete: false},
		{name: "sixth digit adds hyphen", raw: "013101", digits: "013101", display: "01310-1", complete: false},
		{name: "complete", raw: "01310100", digits: "01310100", display: "01310-100", complete: true},
		{name: "already masked", raw: "01310-100", digits: "01310100", display: "01310-100", complete: true},
		{name: "dots and spaces", raw: " 01.310 - 100 ", digits: "01310100", display: "01310-100", complete: true},
		{name: "ninth digit dropped", raw: "013101009", digits: "01310100", display: "01310-100", complete: true},
		{name: "letters between digits", raw: "a0b1c3d1e0f1g0h0i9", digits: "01310100", display: "01310-100", complete: true},
		{name: "letters only", raw: "abc-def", digits: "", display: "", complete: false},
		{name: "hyphen typed early", raw: "013-10", digits: "01310", display: "01310", complete: false},
		{name: "non-ascii digits ignored", raw: "٠١٢01310100", digits: "01310100", display: "01310-100", complete: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Normalize(tt.raw)
			if c.Digits() != tt.digits {
				t.Errorf("Digits() = %q, want %q", c.Digits(), tt.digits)
			}
			if c.Display() != tt.display {
				t.Errorf("Display() = %q, want %q", c.Display(), tt.display)
			}
			if c.IsComplete() != tt.complete {
				t.Errorf("IsComplete() = %v, want %v", c.IsComplete(), tt.complete)
			}
			if c.String() != tt.display {
				t.Errorf("String() = %q, want %q", c.String(), tt.display)
			}
		})
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var c CEP
	if !c.IsEmpty() {
		t.Error("zero CEP should be empty")
	}
	if c.Len() != 0 || c.Display() != "" || c.IsComplete() {
		t.Errorf("zero CEP = {len %d, display %q, complete %v}", c.Len(), c.Display(), c.IsComplete())
	}
	if c != Normalize("") {
		t.Error("zero CEP should equal Normalize(\"\")")
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("01310-100")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Digits() != "01310100" {
		t.Errorf("Digits() = %q, want 01310100", c.Digits())
	}

	c, err = Parse("0131")
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("Parse(\"0131\") error = %v, want ErrIncomplete", err)
	}
	if c.Digits() != "0131" {
		t.Errorf("Parse should still return the partial CEP, got %q", c.Digits())
	}

	// Extra digits are truncated, not rejected
	if _, err := Parse("0131010099"); err != nil {
		t.Errorf("Parse() of 10 digits error = %v, want nil", err)
	}
}

func countASCIIDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}

func TestNormalize_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	inputs := gen.OneGenOf(
		gen.AnyString(),
		gen.NumString(),
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaNumChar()).Map(func(r []rune) string { return string(r) }),
		gen.SliceOf(gen.IntRange(0, len(maskAlphabet)-1)).Map(func(idx []int) string {
			var b strings.Builder
			for _, i := range idx {
				b.WriteString(maskAlphabet[i])
			}
			return b.String()
		}),
	)

	properties.Property("display holds only digits and at most one hyphen", prop.ForAll(
		func(s string) bool {
			c := Normalize(s)
			return displayPattern.MatchString(c.Display()) && strings.Count(c.Display(), "-") <= 1
		},
		inputs,
	))

	properties.Property("digit count never exceeds 8", prop.ForAll(
		func(s string) bool {
			return Normalize(s).Len() <= MaxDigits
		},
		inputs,
	))

	properties.Property("normalize is idempotent", prop.ForAll(
		func(s string) bool {
			c := Normalize(s)
			return Normalize(c.Display()) == c && Normalize(c.Digits()) == c
		},
		inputs,
	))

	properties.Property("complete iff at least 8 digits were typed", prop.ForAll(
		func(s string) bool {
			return Normalize(s).IsComplete() == (countASCIIDigits(s) >= MaxDigits)
		},
		inputs,
	))

	properties.Property("digits are a prefix of the typed digits", prop.ForAll(
		func(s string) bool {
			var typed strings.Builder
			for i := 0; i < len(s); i++ {
				if s[i] >= '0' && s[i] <= '9' {
					typed.WriteByte(s[i])
				}
			}
			return strings.HasPrefix(typed.String(), Normalize(s).Digits())
		},
		inputs,
	))

	properties.TestingRun(t)
}
