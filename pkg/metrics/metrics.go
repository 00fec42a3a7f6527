package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TileRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tiles_requests_total",
		Help: "Total number of tile requests with valid coordinates",
	})

	TilesServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tiles_served_total",
		Help: "Total number of tiles served successfully",
	})

	TilesNotFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tiles_not_found_total",
		Help: "Total number of requests for tiles that could not be found",
	})

	TileReadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tiles_read_errors_total",
		Help: "Total number of tiles that were found but failed to read",
	})

	TileBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tiles_served_bytes",
		Help:    "Size of served tiles in bytes",
		Buckets: prometheus.ExponentialBuckets(256, 4, 8),
	})
)
