package handlers

import "github.com/prometheus/client_golang/prometheus"

var (
	gridBuilds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "channel_grid_builds_total",
			Help: "Total number of day grids computed",
		},
	)
	sectionBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "channel_section_builds_total",
			Help: "Landing page section builds, by outcome",
		},
		[]string{"status"},
	)
	sectionBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "channel_section_build_duration_seconds",
			Help:    "Time taken to rank and assemble the landing page sections",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RegisterMetrics installs the handler metrics on the default registry.
// Called once from main.
func RegisterMetrics() {
	prometheus.MustRegister(gridBuilds, sectionBuilds, sectionBuildDuration)
}
