// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package server is the demo web front end: an index page with a trigger
// control, a /api route that runs a showcase pass, and a /stats counter
// endpoint.
package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/apex/log"

	"github.com/staranto/galaxydex/internal/archive"
	"github.com/staranto/galaxydex/internal/config"
	"github.com/staranto/galaxydex/internal/showcase"
)

type Server struct {
	settings config.Settings
	stats    *archive.Stats
	store    *archive.Store
	showcase *showcase.Showcase
}

func New(settings config.Settings, stats *archive.Stats, store *archive.Store, sc *showcase.Showcase) *Server {
	return &Server{
		settings: settings,
		stats:    stats,
		store:    store,
		showcase: sc,
	}
}

// Handler builds the route table. Anything but the three known paths is a
// plain text 404.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api", s.handleAPI)
	mux.HandleFunc("/stats", s.handleStats)
	return mux
}

// ListenAndServe runs the server until it fails. The port comes from
// resolved settings (--port flag or PORT env).
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.settings.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Infof("listening on %s", srv.Addr)
	return srv.ListenAndServe()
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><title>galaxydex</title></head>
<body>
<h1>galaxydex</h1>
<p><a href="/api">Run the showcase</a> (output goes to the server console) or
check the <a href="/stats">counters</a>.</p>
<footer>
<p>api_calls={{.APICalls}} cache_size={{.CacheSize}} data_size={{.DataSize}} errors={{.Errors}}</p>
</footer>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// The catch-all pattern also routes unknown paths here.
	if r.URL.Path != "/" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	snap := s.stats.Snapshot()
	data := struct {
		APICalls  int64
		CacheSize int
		DataSize  int64
		Errors    int64
	}{
		APICalls:  snap.APICalls,
		CacheSize: s.store.Len(),
		DataSize:  snap.DataSize,
		Errors:    snap.Errors,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.WithError(err).Error("failed to render index")
	}
}

// RunReport is the /api response body. The route waits for the showcase pass
// to finish so the response always reflects completed work; the rendered
// output itself still goes to the server console.
type RunReport struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	APICalls  int64  `json:"api_calls"`
	CacheSize int    `json:"cache_size"`
	DataSize  int64  `json:"data_size"`
	Errors    int64  `json:"errors"`
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report := RunReport{Status: "completed"}
	status := http.StatusOK

	if err := s.showcase.Run(r.Context()); err != nil {
		// The process shrugs off fetch failures; the counter and the report
		// are the record.
		report.Status = "failed"
		report.Error = err.Error()
		status = http.StatusBadGateway
	}

	snap := s.stats.Snapshot()
	report.APICalls = snap.APICalls
	report.CacheSize = s.store.Len()
	report.DataSize = snap.DataSize
	report.Errors = snap.Errors

	s.writeJSON(w, status, report)
}

// statsBody is the exact /stats shape. timeout is milliseconds.
type statsBody struct {
	APICalls  int64 `json:"api_calls"`
	CacheSize int   `json:"cache_size"`
	DataSize  int64 `json:"data_size"`
	Errors    int64 `json:"errors"`
	Debug     bool  `json:"debug"`
	Timeout   int64 `json:"timeout"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := s.stats.Snapshot()
	s.writeJSON(w, http.StatusOK, statsBody{
		APICalls:  snap.APICalls,
		CacheSize: s.store.Len(),
		DataSize:  snap.DataSize,
		Errors:    snap.Errors,
		Debug:     s.settings.Debug,
		Timeout:   s.settings.TimeoutMS(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}
