// Package cep normalizes Brazilian postal codes (CEP) as they are typed.
//
// Raw keystroke text is reduced to its digits, capped at 8, and rendered
// in the XXXXX-XXX mask once a sixth digit exists:
//
//	cep.Normalize("01310")       // "01310"
//	cep.Normalize("013101")      // "01310-1"
//	cep.Normalize("01.310-100")  // "01310-100", complete
//	cep.Normalize("013101009")   // "01310-100", ninth digit dropped
//
// Normalization is pure and idempotent: normalizing a display string yields
// the same CEP again. Digits past the eighth are ignored rather than
// rejected, which mirrors common postal-code masking inputs.
package cep
