// Package form provides the interactive CEP lookup screen.
//
// The form is a Bubble Tea model over a lookup.Controller. It feeds every
// edit through Controller.Input and shows the masked CEP (XXXXX-XXX) back
// in the field, submits on enter, clears on esc, and renders whichever
// QueryState the controller holds:
//
//   - Idle: the empty field and usage tips
//   - Pending: a spinner; the field is read-only and enter is disabled
//   - Success: the address, with empty fields shown as "Não informado"
//   - Failed: the error message under a red field
//
// The request itself runs in a tea.Cmd. Its outcome comes back as a
// message and is handed to Controller.Resolve, which drops it if the form
// was cleared or resubmitted in the meantime.
//
// # Key Bindings
//
//   - enter: consultar
//   - esc, ctrl+l: limpar
//   - ctrl+c (or q on an empty field): sair
package form
