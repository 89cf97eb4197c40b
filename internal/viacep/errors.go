package viacep

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"

	"github.com/muurk/consultacep/internal/urls"
)

// ErrNotFound is returned when ViaCEP answers with {"erro": true}
var ErrNotFound = errors.New("CEP não encontrado")

// ErrInvalidCEP is returned when Lookup is called with an incomplete CEP.
// No request is made in that case.
var ErrInvalidCEP = errors.New("CEP deve conter 8 dígitos")

// ErrorType represents the category of a failed lookup
type ErrorType int

const (
	// ErrTypeNetwork indicates a generic transport failure
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request did not finish in time
	ErrTypeTimeout
	// ErrTypeCanceled indicates the caller abandoned the request
	ErrTypeCanceled
	// ErrTypeDNS indicates the endpoint hostname could not be resolved
	ErrTypeDNS
	// ErrTypeConnectionRefused indicates the endpoint refused the connection
	ErrTypeConnectionRefused
	// ErrTypeHTTP indicates a non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates a body that is not the expected JSON
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeCanceled:
		return "Canceled"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error describes a lookup that failed before an address or a not-found
// marker could be read from the response.
type Error struct {
	Type       ErrorType
	Message    string
	StatusCode int // HTTP status code (ErrTypeHTTP only)
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyTransportError maps an error returned by http.Client.Do to an *Error
func ClassifyTransportError(message string, err error) *Error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &Error{Type: ErrTypeCanceled, Message: message, Err: err}
	case errors.Is(err, context.DeadlineExceeded), os.IsTimeout(err):
		return &Error{Type: ErrTypeTimeout, Message: message, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Type: ErrTypeDNS, Message: message, Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &Error{Type: ErrTypeConnectionRefused, Message: message, Err: err}
	}

	// url.Error wraps all of the above; anything left is generic
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &Error{Type: ErrTypeTimeout, Message: message, Err: err}
	}

	return &Error{Type: ErrTypeNetwork, Message: message, Err: err}
}

// NewHTTPError creates an error for an unexpected status code
func NewHTTPError(statusCode int) *Error {
	return &Error{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewParseError creates an error for a body that could not be decoded
func NewParseError(message string, err error) *Error {
	return &Error{Type: ErrTypeParse, Message: message, Err: err}
}

// TypeOf returns the ErrorType carried by err, if any
func TypeOf(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return 0, false
}

// IsTransportError reports whether err is a network-level failure
// (as opposed to an HTTP or decoding problem)
func IsTransportError(err error) bool {
	t, ok := TypeOf(err)
	if !ok {
		return false
	}
	switch t {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeCanceled, ErrTypeDNS, ErrTypeConnectionRefused:
		return true
	}
	return false
}

// TroubleshootingHints returns short suggestions for a failed lookup
func TroubleshootingHints(err error) []string {
	switch {
	case errors.Is(err, ErrNotFound):
		return []string{
			"Confira os dígitos do CEP",
			"CEPs novos podem ainda não constar na base do ViaCEP",
			"Confira na busca dos Correios: " + urls.CorreiosSearch,
		}
	case errors.Is(err, ErrInvalidCEP):
		return []string{"Informe os 8 dígitos do CEP (XXXXX-XXX)"}
	}

	t, ok := TypeOf(err)
	if !ok {
		return nil
	}

	switch t {
	case ErrTypeTimeout:
		return []string{
			"O serviço não respondeu a tempo",
			"Tente novamente ou aumente --timeout",
		}
	case ErrTypeDNS:
		return []string{
			"Não foi possível resolver o endereço do serviço",
			"Verifique sua conexão e configurações de DNS",
		}
	case ErrTypeConnectionRefused:
		return []string{
			"O serviço recusou a conexão",
			"Verifique --base-url ou o arquivo de configuração",
		}
	case ErrTypeHTTP:
		return []string{
			"O serviço retornou um erro; tente novamente mais tarde",
			"Situação e limites do serviço: " + urls.ViaCEPDocs,
		}
	case ErrTypeParse:
		return []string{"A resposta do serviço não pôde ser interpretada"}
	default:
		return []string{"Verifique sua conexão com a internet"}
	}
}
