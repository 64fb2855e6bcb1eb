package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "okuyan_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PostMutations counts write operations on the posts collection by kind.
	PostMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "okuyan_post_mutations_total",
		Help: "Total number of post mutations by kind",
	}, []string{"kind"})

	// MediaUploads counts accepted media uploads by attachment kind.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "okuyan_media_uploads_total",
		Help: "Total number of accepted media uploads by kind",
	}, []string{"kind"})

	// MediaProcessingDuration records how long media processing (decode,
	// resize, re-encode, write) takes per kind.
	MediaProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "okuyan_media_processing_duration_seconds",
		Help:    "Media processing duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
)

// TrackMediaProcessing returns a function that records processing latency when
// called (e.g. defer).
func TrackMediaProcessing(kind string) func() {
	start := time.Now()
	return func() {
		MediaProcessingDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}
}
