package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/muurk/consultacep/internal/logging"
	"github.com/muurk/consultacep/internal/lookup"
	"github.com/muurk/consultacep/internal/version"
	"github.com/muurk/consultacep/internal/viacep"
)

// requestTimeout bounds a whole request, lookup included
const requestTimeout = 30 * time.Second

// Handler serves CEP lookups over HTTP
type Handler struct {
	Resolver lookup.Resolver
	Timeout  time.Duration
}

// NewHandler creates a handler resolving through r. A zero timeout uses
// lookup.DefaultTimeout.
func NewHandler(r lookup.Resolver, timeout time.Duration) *Handler {
	return &Handler{
		Resolver: r,
		Timeout:  timeout,
	}
}

// LookupHandler answers GET /cep/{cep}. Each request gets its own
// controller, so the usual masking and state rules apply per request.
func (h *Handler) LookupHandler(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "cep")

	ctrl := lookup.New(h.Resolver)
	ctrl.SetTimeout(h.Timeout)
	code := ctrl.Input(raw)

	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("cep", code.Digits()))

	st := ctrl.Lookup(r.Context())
	switch st.Phase {
	case lookup.Success:
		WriteJSON(w, st.Address, http.StatusOK)
	case lookup.Failed:
		h.writeFailure(w, r, st)
	default:
		// Lookup always ends in Success or Failed
		logging.Error("Lookup ended in unexpected state", zap.Stringer("state", st))
		WriteError(w, MsgLookupFailed, http.StatusInternalServerError)
	}
}

func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, st lookup.State) {
	switch st.Kind {
	case lookup.InvalidFormat:
		WriteError(w, MsgInvalidZipcode, http.StatusUnprocessableEntity)
	case lookup.NotFound:
		WriteError(w, MsgNotFound, http.StatusNotFound)
	default:
		logging.Warn("Lookup failed upstream",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Bool("transport", viacep.IsTransportError(st.Err)),
			zap.Error(st.Err),
		)
		WriteError(w, MsgLookupFailed, http.StatusBadGateway)
	}
}

// HealthHandler answers GET /healthz
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// VersionHandler answers GET /version
func (h *Handler) VersionHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, version.Get(), http.StatusOK)
}

// requestLogger logs each request through the zap logger
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, ww.Status(), middleware.GetReqID(r.Context()))
	})
}

// SetupRouter builds the routes and wraps them in the OpenTelemetry
// server handler
func SetupRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/cep/{cep}", h.LookupHandler)
	r.Get("/healthz", h.HealthHandler)
	r.Get("/version", h.VersionHandler)

	return otelhttp.NewHandler(r, "consultacep-server")
}
