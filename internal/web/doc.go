// Package web serves the BookShelf Hub catalog page over HTTP with gin.
//
// Every GET / performs its own load against the API (state.Load with a
// fresh store), applies the ?q= and ?genre= filters, and renders the
// embedded page template. The book area shows exactly one of the loading,
// error, empty or populated states.
//
// Routes:
//
//	GET /         catalog page
//	GET /healthz  liveness probe
//	GET /metrics  Prometheus exposition
//
// Middleware attaches a request id (X-Request-ID, generated with uuid when
// absent) to the request context so loader logs correlate with the access
// log line, and records request counts and latency.
package web
