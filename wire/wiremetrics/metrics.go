// Package wiremetrics exports request lifecycle metrics through Prometheus.
package wiremetrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/danmuck/xcbind/wire"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeReply = "reply"
	OutcomeError = "error"
	OutcomeEmpty = "empty"
)

var (
	registerOnce sync.Once

	requestsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xcbind",
			Subsystem: "requests",
			Name:      "submitted_total",
			Help:      "Requests handed to the transport.",
		},
		[]string{"checked", "reply"},
	)
	requestsResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xcbind",
			Subsystem: "requests",
			Name:      "resolved_total",
			Help:      "Requests resolved, by outcome.",
		},
		[]string{"outcome", "error_code"},
	)
	requestsDiscarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "xcbind",
			Subsystem: "requests",
			Name:      "discarded_total",
			Help:      "Pending requests discarded without waiting.",
		},
	)
	resolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "xcbind",
			Subsystem: "requests",
			Name:      "resolve_duration_seconds",
			Help:      "Time from submission to resolution in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestsSubmitted, requestsResolved, requestsDiscarded, resolveDuration)
	})
}

// Observer records wire.Request lifecycle events.
type Observer struct{}

// Install registers the metrics and makes Observer the process-wide
// wire observer.
func Install() {
	RegisterMetrics()
	wire.SetObserver(Observer{})
}

func (Observer) Submitted(cookie wire.Cookie) {
	requestsSubmitted.WithLabelValues(
		strconv.FormatBool(cookie.Checked),
		strconv.FormatBool(cookie.Reply),
	).Inc()
}

func (Observer) Resolved(_ wire.Cookie, reply bool, perr *wire.ProtocolError, elapsed time.Duration) {
	outcome, code := OutcomeEmpty, ""
	switch {
	case perr != nil:
		outcome, code = OutcomeError, wire.ErrorName(perr.Code)
	case reply:
		outcome = OutcomeReply
	}
	requestsResolved.WithLabelValues(outcome, code).Inc()
	resolveDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (Observer) Discarded(wire.Cookie) {
	requestsDiscarded.Inc()
}
