// Package urls provides centralized constants for the external URLs shown
// to users: the project page, the ViaCEP documentation and the Correios
// search used to double-check a CEP.
//
// Usage:
//
//	import "github.com/muurk/consultacep/internal/urls"
//
//	fmt.Printf("Confira em: %s\n", urls.CorreiosSearch)
package urls
