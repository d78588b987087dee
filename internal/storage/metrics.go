package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// retriesTotal counts retried store round-trips. A rising rate means the
// backend is flapping while callers still see successful responses.
var retriesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scoreapi_storage_retries_total",
	Help: "Total number of retried store operations.",
})
