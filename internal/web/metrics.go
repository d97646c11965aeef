package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	previewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "normalizer_previews_total",
			Help: "Total number of normalization previews served",
		},
		[]string{"job"},
	)

	previewWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "normalizer_preview_warnings_total",
			Help: "Warnings raised while serving normalization previews",
		},
		[]string{"job"},
	)
)

// recordPreview counts one preview and its warnings
func recordPreview(job string, warnings int) {
	previewsTotal.WithLabelValues(job).Inc()
	if warnings > 0 {
		previewWarningsTotal.WithLabelValues(job).Add(float64(warnings))
	}
}
