// Package metrics exposes Prometheus collectors for the collection pipeline.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	collectorPagesTotal        *prometheus.CounterVec
	collectorItemsTotal        *prometheus.CounterVec
	collectorDuplicatesTotal   *prometheus.CounterVec
	collectorStoreFailures     *prometheus.CounterVec
	collectorRunDurationSecond prometheus.Histogram

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		collectorPagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econodeal_pages_total",
				Help: "Total number of search pages fetched, labeled by store slug.",
			},
			[]string{"store"},
		)

		collectorItemsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econodeal_items_total",
				Help: "Total number of items collected after deduplication, labeled by store slug.",
			},
			[]string{"store"},
		)

		collectorDuplicatesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econodeal_duplicates_total",
				Help: "Total number of items skipped as duplicate or sku-less, labeled by store slug.",
			},
			[]string{"store"},
		)

		collectorStoreFailures = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econodeal_store_failures_total",
				Help: "Total number of stores whose collection aborted on an error.",
			},
			[]string{"store"},
		)

		collectorRunDurationSecond = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "econodeal_run_duration_seconds",
				Help:    "Histogram of end-to-end collection run durations.",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObservePage increments the fetched-pages counter for a store.
func ObservePage(store string) {
	collectorPagesTotal.WithLabelValues(store).Inc()
}

// ObserveItems adds collected and skipped item counts for a store.
func ObserveItems(store string, kept, skipped int) {
	if kept > 0 {
		collectorItemsTotal.WithLabelValues(store).Add(float64(kept))
	}
	if skipped > 0 {
		collectorDuplicatesTotal.WithLabelValues(store).Add(float64(skipped))
	}
}

// ObserveStoreFailure increments the per-store failure counter.
func ObserveStoreFailure(store string) {
	collectorStoreFailures.WithLabelValues(store).Inc()
}

// ObserveRunDuration records the duration of one complete run.
func ObserveRunDuration(d time.Duration) {
	collectorRunDurationSecond.Observe(d.Seconds())
}
