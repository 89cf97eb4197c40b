package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/consultacep/internal/cep"
	"github.com/muurk/consultacep/internal/logging"
	"github.com/muurk/consultacep/internal/viacep"
)

type stubResolver struct {
	calls atomic.Int32
	got   atomic.Value
	addr  *viacep.Address
	err   error
}

func (s *stubResolver) Lookup(_ context.Context, code cep.CEP) (*viacep.Address, error) {
	s.calls.Add(1)
	s.got.Store(code.Digits())
	return s.addr, s.err
}

var paulista = &viacep.Address{
	CEP:        "01310-100",
	Logradouro: "Avenida Paulista",
	Bairro:     "Bela Vista",
	Localidade: "São Paulo",
	UF:         "SP",
}

func serve(t *testing.T, r *stubResolver, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := SetupRouter(NewHandler(r, time.Second))
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLookupHandler(t *testing.T) {
	tests := []struct {
		name       string
		resolver   *stubResolver
		path       string
		wantStatus int
		wantMsg    string
		wantCalls  int32
	}{
		{
			name:       "found",
			resolver:   &stubResolver{addr: paulista},
			path:       "/cep/01310100",
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "masked input",
			resolver:   &stubResolver{addr: paulista},
			path:       "/cep/01310-100",
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "too short",
			resolver:   &stubResolver{addr: paulista},
			path:       "/cep/0131",
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    MsgInvalidZipcode,
		},
		{
			name:       "no digits",
			resolver:   &stubResolver{addr: paulista},
			path:       "/cep/abcdefgh",
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    MsgInvalidZipcode,
		},
		{
			name:       "not found",
			resolver:   &stubResolver{err: viacep.ErrNotFound},
			path:       "/cep/99999999",
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgNotFound,
			wantCalls:  1,
		},
		{
			name:       "upstream failure",
			resolver:   &stubResolver{err: viacep.NewHTTPError(500)},
			path:       "/cep/01310100",
			wantStatus: http.StatusBadGateway,
			wantMsg:    MsgLookupFailed,
			wantCalls:  1,
		},
		{
			name:       "network failure",
			resolver:   &stubResolver{err: viacep.ClassifyTransportError("GET request failed", errors.New("connection reset"))},
			path:       "/cep/01310100",
			wantStatus: http.StatusBadGateway,
			wantMsg:    MsgLookupFailed,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.resolver, tt.path)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := tt.resolver.calls.Load(); got != tt.wantCalls {
				t.Errorf("resolver called %d times, want %d", got, tt.wantCalls)
			}

			if tt.wantMsg != "" {
				var body ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("decoding error body: %v", err)
				}
				if body.Message != tt.wantMsg {
					t.Errorf("message = %q, want %q", body.Message, tt.wantMsg)
				}
				return
			}

			var addr viacep.Address
			if err := json.NewDecoder(rec.Body).Decode(&addr); err != nil {
				t.Fatalf("decoding address: %v", err)
			}
			if addr.Logradouro != "Avenida Paulista" || addr.CEP != "01310-100" {
				t.Errorf("address = %+v", addr)
			}
			if got := tt.resolver.got.Load(); got != "01310100" {
				t.Errorf("resolver got %v, want digits only", got)
			}
		})
	}
}

func TestHealthAndVersion(t *testing.T) {
	rec := serve(t, &stubResolver{}, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
	var health HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil || health.Status != "ok" {
		t.Errorf("healthz body = %+v, err %v", health, err)
	}

	rec = serve(t, &stubResolver{}, "/version")
	if rec.Code != http.StatusOK {
		t.Fatalf("version status = %d", rec.Code)
	}
	var info map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decoding version: %v", err)
	}
	if info["version"] == "" || info["go_version"] == "" {
		t.Errorf("version body = %v", info)
	}
}

func TestUnknownRoute(t *testing.T) {
	if rec := serve(t, &stubResolver{}, "/weather"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServerRunAndShutdown(t *testing.T) {
	srv := NewServer("127.0.0.1:0", NewHandler(&stubResolver{addr: paulista}, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		t.Fatalf("Run() returned early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + srv.Addr() + "/cep/01310100")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerListenError(t *testing.T) {
	srv := NewServer("256.0.0.1:bad", NewHandler(&stubResolver{}, time.Second))
	if err := srv.Run(context.Background()); err == nil {
		t.Error("Run() with a bad address should fail")
	}
}

func TestLookupHandler_LogsUpstreamFailureKind(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })

	tests := []struct {
		name          string
		err           error
		wantTransport bool
	}{
		{"http status", viacep.NewHTTPError(503), false},
		{"connection reset", viacep.ClassifyTransportError("GET request failed", errors.New("connection reset")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = logs.TakeAll()

			rec := serve(t, &stubResolver{err: tt.err}, "/cep/01310100")
			if rec.Code != http.StatusBadGateway {
				t.Fatalf("status = %d, want 502", rec.Code)
			}

			entries := logs.FilterMessage("Lookup failed upstream").All()
			if len(entries) != 1 {
				t.Fatalf("got %d upstream failure entries, want 1", len(entries))
			}
			if got := entries[0].ContextMap()["transport"]; got != tt.wantTransport {
				t.Errorf("transport = %v, want %v", got, tt.wantTransport)
			}
		})
	}
}
