package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/negroni"

	"github.com/typesmith/json2type/corpus"
	"github.com/typesmith/json2type/observe"
	"github.com/typesmith/json2type/render"
	"github.com/typesmith/json2type/synth"
)

func (s *server) setupRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth()).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	s.router.HandleFunc("/v1/infer", s.handleInfer()).Methods("POST")
	s.router.Use(logMiddleware)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rid := uuid.NewString()
		ww := negroni.NewResponseWriter(w)
		ww.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(ww, r)
		slog.Info("request",
			"id", rid,
			"method", r.Method,
			"path", r.RequestURI,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func (*server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}
}

// handleInfer reads a JSONL corpus from the request body and responds with
// the rendered type document. The target defaults to python and can be set
// with ?target=.
func (s *server) handleInfer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		target := render.Target(r.URL.Query().Get("target"))
		if target == "" {
			target = render.TargetPython
		}

		body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
		defer body.Close()

		elem, stats, err := corpus.Collect(body, s.corpusOpts)
		if err != nil {
			inferRequests.WithLabelValues("decode_error").Inc()
			writeInferError(w, err)
			return
		}
		inferRecords.Add(float64(stats.Records))

		res := synth.Synthesize(elem, synth.Options{LiteralLimit: s.literalLimit})
		out, err := render.Render(res, target)
		if err != nil {
			inferRequests.WithLabelValues("bad_target").Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		inferRequests.WithLabelValues("ok").Inc()
		inferDuration.Observe(time.Since(start).Seconds())

		if target == render.TargetOpenAPI {
			w.Header().Set("Content-Type", "application/json")
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		w.Write(out)
	}
}

func writeInferError(w http.ResponseWriter, err error) {
	var de *corpus.DecodeError
	var ce *observe.ConflictError
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxErr):
		http.Error(w, "corpus too large", http.StatusRequestEntityTooLarge)
	case errors.As(err, &de), errors.As(err, &ce):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
