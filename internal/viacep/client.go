package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/muurk/consultacep/internal/cep"
	"github.com/muurk/consultacep/internal/version"
)

const (
	// DefaultBaseURL is the public ViaCEP web service
	DefaultBaseURL = "https://viacep.com.br/ws"

	// DefaultTimeout bounds a single lookup at the HTTP client level
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps how much of a response body is read
	maxBodySize = 64 << 10

	tracerName = "github.com/muurk/consultacep/internal/viacep"
)

// Client performs CEP lookups against ViaCEP
type Client struct {
	// BaseURL is the service root without trailing slash (e.g., "https://viacep.com.br/ws")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for the public ViaCEP endpoint
func NewClient() *Client {
	return NewClientWithURL(DefaultBaseURL)
}

// NewClientWithURL creates a client for a ViaCEP-compatible service.
// The transport is instrumented with OpenTelemetry.
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// URL returns the lookup URL for a complete CEP
func (c *Client) URL(code cep.CEP) string {
	return fmt.Sprintf("%s/%s/json/", c.BaseURL, code.Digits())
}

// Lookup resolves a complete CEP to an address with exactly one GET.
//
// Returns ErrInvalidCEP without any I/O when code is incomplete,
// ErrNotFound when ViaCEP answers {"erro": true}, and an *Error for
// transport, status and decoding failures.
func (c *Client) Lookup(ctx context.Context, code cep.CEP) (*Address, error) {
	if !code.IsComplete() {
		return nil, ErrInvalidCEP
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "viacep.lookup")
	defer span.End()
	span.SetAttributes(attribute.String("cep", code.Digits()))

	addr, err := c.lookup(ctx, code)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			span.RecordError(err)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return addr, nil
}

func (c *Client) lookup(ctx context.Context, code cep.CEP) (*Address, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(code), nil)
	if err != nil {
		return nil, ClassifyTransportError("failed to create GET request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, ClassifyTransportError("GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewHTTPError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, ClassifyTransportError("failed to read response body", err)
	}

	var parsed lookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, NewParseError("failed to parse JSON response", err)
	}

	if parsed.notFound() {
		return nil, ErrNotFound
	}

	// An object without the cep key is not an address
	if parsed.CEP == "" {
		return nil, NewParseError("response carries no address", nil)
	}

	addr := parsed.Address
	return &addr, nil
}
