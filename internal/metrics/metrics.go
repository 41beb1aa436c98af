// Package metrics provides Prometheus metrics for news-quiz.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsquiz"

var (
	// HTTPRequestsTotal counts handled requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// QuizUploadsTotal counts quiz set uploads by outcome.
	QuizUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_uploads_total",
			Help:      "Total number of quiz set uploads",
		},
		[]string{"status"},
	)

	// QuizAnswersGraded counts graded answers by correctness.
	QuizAnswersGraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_answers_graded_total",
			Help:      "Total number of graded quiz answers",
		},
		[]string{"correct"},
	)

	// AIGenerationDuration measures calls to the quiz generator.
	AIGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_generation_duration_seconds",
			Help:      "Duration of AI quiz generation calls in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"status"},
	)

	// QuizCacheRequests counts quiz cache lookups by result.
	QuizCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_cache_requests_total",
			Help:      "Total number of quiz cache lookups",
		},
		[]string{"result"},
	)
)

// RecordHTTPRequest records one handled request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordQuizUpload records the outcome of one quiz set upload.
func RecordQuizUpload(err error) {
	QuizUploadsTotal.WithLabelValues(statusLabel(err)).Inc()
}

// RecordGrade records one graded answer.
func RecordGrade(correct bool) {
	QuizAnswersGraded.WithLabelValues(strconv.FormatBool(correct)).Inc()
}

// RecordAIGeneration records one generator call.
func RecordAIGeneration(err error, duration time.Duration) {
	AIGenerationDuration.WithLabelValues(statusLabel(err)).Observe(duration.Seconds())
}

// RecordCacheLookup records a quiz cache hit or miss.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	QuizCacheRequests.WithLabelValues(result).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
