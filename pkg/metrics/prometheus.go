package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ConversionsTotal *prometheus.CounterVec
	UnresolvedTotal  *prometheus.CounterVec
	AnnotationTime   prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics on the given registerer.
// Pass prometheus.DefaultRegisterer to expose them on /metrics.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ConversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "The total number of time conversions by result",
		}, []string{"result"}),
		UnresolvedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unresolved_total",
			Help:      "The total number of conversions left untouched, by reason",
		}, []string{"reason"}),
		AnnotationTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "annotation_batch_seconds",
			Help:      "Time taken to annotate one page scan",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
