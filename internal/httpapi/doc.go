// Package httpapi exposes CEP lookups over HTTP.
//
// Routes:
//
//	GET /cep/{cep}  200 address JSON
//	                422 {"message":"invalid zipcode"}
//	                404 {"message":"can not find zipcode"}
//	                502 {"message":"lookup failed"}
//	GET /healthz    200 {"status":"ok"}
//	GET /version    200 build information
//
// The {cep} segment goes through the same normalization as the form, so
// "01310-100" and "01310100" are equivalent. Every request runs its own
// lookup.Controller. The router is wrapped in an OpenTelemetry handler and
// logs each request through internal/logging.
package httpapi
