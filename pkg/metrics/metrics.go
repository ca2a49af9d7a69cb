// Package metrics 提供 Prometheus 指标采集功能
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "boss_brief"
)

var (
	// HTTP 请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_size_bytes",
			Help:      "HTTP request size in bytes",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)

	// 业务指标 - Brief 会话
	BriefConversationStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "brief",
			Name:      "conversations_started_total",
			Help:      "Total number of brief conversations started",
		},
	)

	BriefConversationCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "brief",
			Name:      "conversations_completed_total",
			Help:      "Total number of brief conversations completed",
		},
	)

	BriefConversationReset = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "brief",
			Name:      "conversations_reset_total",
			Help:      "Total number of brief conversation resets",
		},
	)

	BriefAnswersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "brief",
			Name:      "answers_total",
			Help:      "Total number of brief answers by step key",
		},
		[]string{"step_key"},
	)

	BriefStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "brief",
			Name:      "step_duration_seconds",
			Help:      "Time spent advancing to the next step (includes typing delay)",
			Buckets:   []float64{.1, .25, .5, .75, 1, 1.5, 2, 3},
		},
		[]string{"step_key"},
	)

	// 业务指标 - Job
	JobsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "job",
			Name:      "created_total",
			Help:      "Total number of jobs created by initial status",
		},
		[]string{"status"},
	)

	JobStatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "job",
			Name:      "status_transitions_total",
			Help:      "Total number of job status transitions",
		},
		[]string{"from", "to"},
	)

	// 业务指标 - Worker
	WorkersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "registered_total",
			Help:      "Total number of workers registered",
		},
	)

	WorkerProfileCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "profile_cache_total",
			Help:      "Derived profile cache lookups by result",
		},
		[]string{"result"},
	)
)
