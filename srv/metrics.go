package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inferRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "json2type_infer_requests_total",
		Help: "Inference requests by outcome.",
	}, []string{"outcome"})

	inferRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "json2type_infer_records_total",
		Help: "Records folded into observations across all requests.",
	})

	inferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "json2type_infer_duration_seconds",
		Help:    "Time spent collecting, synthesizing and rendering per request.",
		Buckets: prometheus.DefBuckets,
	})
)
