// Package metrics exposes the Prometheus collectors shared by shelf-web.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/five82/shelf/internal/catalog"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shelf_http_requests_total",
		Help: "Total number of HTTP requests served by shelf-web",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shelf_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	APIFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shelf_api_fetch_total",
		Help: "Catalog API fetches by source and outcome",
	}, []string{"source", "outcome"})
)

// Outcome labels for APIFetchTotal.
const (
	OutcomeOK          = "ok"
	OutcomeApplication = "application_error"
	OutcomeTransport   = "transport_error"
)

// RecordFetch counts one load: every source that is not in errs is counted
// as ok.
func RecordFetch(errs []*catalog.SourceError) {
	failed := map[catalog.Source]catalog.ErrorKind{}
	for _, e := range errs {
		if e != nil {
			failed[e.Source] = e.Kind
		}
	}
	for _, src := range []catalog.Source{catalog.SourceBooks, catalog.SourceSettings} {
		kind, ok := failed[src]
		switch {
		case !ok:
			APIFetchTotal.WithLabelValues(string(src), OutcomeOK).Inc()
		case kind == catalog.KindTransport:
			APIFetchTotal.WithLabelValues(string(src), OutcomeTransport).Inc()
		default:
			APIFetchTotal.WithLabelValues(string(src), OutcomeApplication).Inc()
		}
	}
}
