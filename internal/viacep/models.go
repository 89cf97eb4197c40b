package viacep

import (
	"bytes"
	"encoding/json"
)

// Address is the address record returned by ViaCEP.
// Every field except CEP may be empty; an empty field is a valid answer,
// not an error.
type Address struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	DDD         string `json:"ddd"`

	// Extra fields ViaCEP sends; not shown by the form
	Unidade string `json:"unidade,omitempty"`
	Estado  string `json:"estado,omitempty"`
	Regiao  string `json:"regiao,omitempty"`
	IBGE    string `json:"ibge,omitempty"`
	GIA     string `json:"gia,omitempty"`
	SIAFI   string `json:"siafi,omitempty"`
}

// lookupResponse is the raw body of GET /ws/{cep}/json/.
// ViaCEP signals an unknown code with "erro": true; older deployments
// send the string "true" instead, so the marker is kept raw.
type lookupResponse struct {
	Address
	Erro json.RawMessage `json:"erro,omitempty"`
}

// notFound reports whether the body carried a truthy "erro" marker
func (r *lookupResponse) notFound() bool {
	v := bytes.TrimSpace(r.Erro)
	return bytes.Equal(v, []byte("true")) || bytes.Equal(v, []byte(`"true"`))
}
