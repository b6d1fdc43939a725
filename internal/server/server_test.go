// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/galaxydex/internal/archive"
	"github.com/staranto/galaxydex/internal/config"
	"github.com/staranto/galaxydex/internal/output"
	"github.com/staranto/galaxydex/internal/showcase"
)

func newTestServer(archiveURL string) *Server {
	settings := config.Settings{
		BaseURL: archiveURL,
		Debug:   true,
		Port:    config.DefaultPort,
		Timeout: time.Duration(config.DefaultTimeoutMS) * time.Millisecond,
	}
	store := archive.NewStore()
	stats := &archive.Stats{}
	client := archive.NewClient(settings, store, stats)
	sc := showcase.New(client, stats, &output.Emitter{Format: "text", W: io.Discard})
	return New(settings, stats, store, sc)
}

func TestStats_DefaultsBeforeAnyRun(t *testing.T) {
	s := newTestServer("https://unused.invalid/api/")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, float64(0), body["api_calls"])
	assert.Equal(t, float64(0), body["cache_size"])
	assert.Equal(t, float64(0), body["data_size"])
	assert.Equal(t, float64(0), body["errors"])
	assert.Equal(t, true, body["debug"])
	assert.Equal(t, float64(5000), body["timeout"])
}

func TestIndex(t *testing.T) {
	s := newTestServer("https://unused.invalid/api/")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "galaxydex")
	assert.Contains(t, rec.Body.String(), "api_calls=0")
}

func TestUnknownPath_NotFound(t *testing.T) {
	s := newTestServer("https://unused.invalid/api/")

	for _, path := range []string{"/nope", "/api/extra", "/stats/x"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain", path)
	}
}

func TestAPI_RunsShowcaseAndWaits(t *testing.T) {
	archiveSrv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"count":0,"results":[],"films":[]}`)
		}))
	defer archiveSrv.Close()

	s := newTestServer(archiveSrv.URL + "/")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var report RunReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "completed", report.Status)
	assert.Equal(t, int64(5), report.APICalls)
	assert.Equal(t, 5, report.CacheSize)
	assert.Positive(t, report.DataSize)
	assert.Equal(t, int64(0), report.Errors)

	// The counters visible through /stats moved too.
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(5), body["api_calls"])
	assert.Equal(t, float64(5), body["cache_size"])
}

func TestAPI_ReportsFailure(t *testing.T) {
	archiveSrv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
	defer archiveSrv.Close()

	s := newTestServer(archiveSrv.URL + "/")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var report RunReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "failed", report.Status)
	assert.NotEmpty(t, report.Error)
	assert.Equal(t, int64(1), report.Errors)

	// The process is still up and serving.
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	s := newTestServer("https://unused.invalid/api/")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
