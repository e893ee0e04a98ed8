// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package paprika

import "errors"

// Error taxonomy for remote calls. Callers match with errors.Is; the
// orchestrator decides per class whether to abort the batch or skip the
// record.
var (
	// ErrAuth covers bad credentials and expired sessions. Fatal to the
	// current operation; never retried automatically.
	ErrAuth = errors.New("paprika: authentication failed")

	// ErrRateLimited means the service throttled us despite local
	// pacing (HTTP 429). Retried once after a long backoff.
	ErrRateLimited = errors.New("paprika: rate limited by service")

	// ErrTransient covers connection-level failures and 5xx responses.
	// Retried with bounded exponential backoff.
	ErrTransient = errors.New("paprika: transient network failure")

	// ErrNotFound means the service does not know the identifier.
	ErrNotFound = errors.New("paprika: recipe not found")

	// ErrProtocol means the response had an unexpected shape. Not
	// retried; it indicates an API change needing investigation.
	ErrProtocol = errors.New("paprika: unexpected response from service")
)
