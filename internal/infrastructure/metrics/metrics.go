package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Therapy-API Metrics
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "therapist",
			Subsystem: "therapy_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "therapist",
			Subsystem: "therapy_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	DialoguesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "therapist",
			Subsystem: "therapy_api",
			Name:      "dialogues_created_total",
			Help:      "Total dialogues created",
		},
	)

	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "therapist",
			Subsystem: "therapy_api",
			Name:      "turns_total",
			Help:      "Total conversation turns by outcome",
		},
		[]string{"outcome"},
	)

	TranscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "therapist",
			Subsystem: "therapy_api",
			Name:      "transcriptions_total",
			Help:      "Total transcription requests by outcome",
		},
		[]string{"outcome"},
	)

	FeedbackRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "therapist",
			Subsystem: "therapy_api",
			Name:      "feedback_recorded_total",
			Help:      "Total feedback rows recorded",
		},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "therapist",
			Subsystem: "therapy_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider"},
	)
)

// RecordRequest records one completed HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordProviderError records one failed collaborator call.
func RecordProviderError(provider string) {
	ProviderErrorsTotal.WithLabelValues(provider).Inc()
}
