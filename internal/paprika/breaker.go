// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package paprika

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/paprikasync/internal/logging"
)

// newBreaker builds the circuit breaker guarding the raw HTTP exchange.
// A batch upload of a few hundred recipes against a dead or blocking
// service would otherwise grind through its full retry schedule per
// record; the breaker fails the remainder fast instead.
//
// Only transport-level trouble counts as failure. Auth, not-found and
// rate-limit responses prove the service is alive and must not trip the
// circuit.
func newBreaker() *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "paprika-api",
		MaxRequests: 1,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},

		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			return !errors.Is(err, ErrTransient) && !errors.Is(err, ErrProtocol)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	})
}
