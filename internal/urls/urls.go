package urls

// Repository is the project page, shown in the form header
const Repository = "github.com/muurk/consultacep"

// ViaCEPDocs documents the web service, its limits and response format.
const ViaCEPDocs = "https://viacep.com.br/"

// CorreiosSearch is the official Correios lookup. ViaCEP mirrors the
// Correios base with some delay, so a CEP missing there may exist here.
const CorreiosSearch = "https://buscacepinter.correios.com.br/app/endereco/index.php"
