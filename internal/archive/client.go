// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package archive

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/galaxydex/internal/config"
)

// Client fetches archive records over HTTPS. Payloads are cached in the
// Store keyed by endpoint, so any endpoint is requested from the network at
// most once per process.
type Client struct {
	base     string
	settings config.Settings
	http     *http.Client
	store    *Store
	stats    *Stats
}

// NewClient wires a Client from resolved settings. Certificates are
// validated unless settings explicitly opt out, and the opt-out is logged so
// it never happens silently.
func NewClient(settings config.Settings, store *Store, stats *Stats) *Client {
	hc := &http.Client{Timeout: settings.Timeout}

	if settings.Insecure {
		log.Warn("TLS certificate validation is disabled (--insecure)")
		hc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		}
	}

	base := settings.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return &Client{
		base:     base,
		settings: settings,
		http:     hc,
		store:    store,
		stats:    stats,
	}
}

// Fetch returns the parsed payload for endpoint. A cached endpoint is
// answered immediately with no network call and no counter movement.
// Concurrent fetches of the same uncached endpoint share one request.
//
// On failure the error is one of *NetworkError, *HTTPError, *TimeoutError or
// *ParseError, the error counter has been incremented exactly once, and
// nothing was cached.
func (c *Client) Fetch(ctx context.Context, endpoint string) (gjson.Result, error) {
	data, err := c.store.Do(endpoint, func() ([]byte, error) {
		return c.download(ctx, endpoint)
	})
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(data), nil
}

// download performs the actual GET. Only uncached endpoints get here.
func (c *Client) download(ctx context.Context, endpoint string) ([]byte, error) {
	c.stats.RecordCall()

	u := c.base + endpoint
	log.Debugf("fetching %s", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.stats.RecordError()
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.stats.RecordError()
		return nil, c.classifyTransport(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.stats.RecordError()
		return nil, &HTTPError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.stats.RecordError()
		return nil, c.classifyTransport(endpoint, err)
	}

	if !gjson.ValidBytes(body) {
		c.stats.RecordError()
		return nil, &ParseError{Endpoint: endpoint, Err: errors.New("body is not a JSON document")}
	}

	log.Debugf("fetched %s (%d bytes)", endpoint, len(body))
	return body, nil
}

// classifyTransport maps a transport failure onto the error taxonomy. A
// deadline that fired mid-exchange is a timeout; everything else is a
// network failure.
func (c *Client) classifyTransport(endpoint string, err error) error {
	var (
		uerr *url.Error
		nerr net.Error
	)

	timedOut := errors.Is(err, context.DeadlineExceeded)
	if errors.As(err, &uerr) && uerr.Timeout() {
		timedOut = true
	}
	if errors.As(err, &nerr) && nerr.Timeout() {
		timedOut = true
	}

	if timedOut {
		return &TimeoutError{Endpoint: endpoint, After: c.settings.Timeout}
	}
	return &NetworkError{Endpoint: endpoint, Err: err}
}
