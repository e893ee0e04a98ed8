// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package paprika

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMinRequestInterval is the pause enforced between consecutive
// outbound requests. Two seconds keeps a full download of a large
// recipe box comfortably under the service's hourly call budget.
const DefaultMinRequestInterval = 2 * time.Second

// pacedTransport enforces a minimum interval between consecutive
// requests to the service. The limiter is the process-wide pacing state:
// one instance is shared by every request the client issues, and
// rate.Limiter serializes access internally, so the interval holds even
// if a future caller issues requests concurrently.
//
// Pacing happens before the request is sent; the wait honors the
// request's context.
type pacedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// newPacedTransport builds a transport that spaces requests at least
// interval apart. A zero or negative interval disables pacing (used by
// tests and by users who accept the blocking risk).
func newPacedTransport(interval time.Duration, base http.RoundTripper) *pacedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &pacedTransport{
		base:    base,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// RoundTrip waits out the pacing interval, then delegates to the
// underlying transport.
func (t *pacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
