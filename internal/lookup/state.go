package lookup

import (
	"fmt"

	"github.com/muurk/consultacep/internal/viacep"
)

// Phase is the tag of a QueryState
type Phase int

const (
	// Idle means no lookup has been made since the last reset
	Idle Phase = iota
	// Pending means one request is in flight
	Pending
	// Success means the last lookup returned an address
	Success
	// Failed means the last lookup ended with an ErrorKind
	Failed
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// ErrorKind is the failure taxonomy shown to the user
type ErrorKind int

const (
	// NoError is the kind of every non-Failed state
	NoError ErrorKind = iota
	// InvalidFormat means the CEP did not have 8 digits; no request was made
	InvalidFormat
	// NotFound means the service reported the CEP does not exist
	NotFound
	// NetworkError means transport failure, timeout or an unreadable response
	NetworkError
)

// String returns a short identifier for logs and JSON
func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "none"
	case InvalidFormat:
		return "invalid_format"
	case NotFound:
		return "not_found"
	case NetworkError:
		return "network_error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Message returns the user-facing message for the kind
func (k ErrorKind) Message() string {
	switch k {
	case InvalidFormat:
		return "CEP deve conter 8 dígitos"
	case NotFound:
		return "CEP não encontrado"
	case NetworkError:
		return "Erro ao consultar CEP. Tente novamente."
	default:
		return ""
	}
}

// State is the QueryState: a tagged value over Idle, Pending,
// Success(Address) and Failed(ErrorKind).
type State struct {
	Phase Phase

	// Address is set only in Success
	Address *viacep.Address

	// Kind and Err are set only in Failed. Err carries the underlying
	// cause for logs; it is nil for InvalidFormat.
	Kind ErrorKind
	Err  error

	// Generation identifies the lookup this state belongs to
	Generation uint64
}

// IsPending reports whether a request is in flight
func (s State) IsPending() bool {
	return s.Phase == Pending
}

// Message returns the user-facing error message, empty unless Failed
func (s State) Message() string {
	if s.Phase != Failed {
		return ""
	}
	return s.Kind.Message()
}

// String implements fmt.Stringer
func (s State) String() string {
	switch s.Phase {
	case Success:
		return fmt.Sprintf("success(%s)", s.Address.CEP)
	case Failed:
		return fmt.Sprintf("failed(%s)", s.Kind)
	default:
		return s.Phase.String()
	}
}
