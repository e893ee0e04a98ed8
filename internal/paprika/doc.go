// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

/*
Package paprika implements the client for the Paprika 3 cloud sync API.

The API is unofficial: it is the protocol the vendor's own apps speak,
reverse-engineered from observed behavior. That shapes the whole package.

  - Login goes through the v1 endpoint. The v2 login endpoint rejects
    clients it does not recognize; v1 happily hands the same bearer
    token to anyone with valid credentials.
  - The service enforces an hourly request budget per account and blocks
    IPs that blow through it, so every outbound request is paced through
    a shared minimum-interval limiter (default 2s between calls).
  - There is no delete endpoint. Records are trashed by uploading them
    with in_trash set.
  - Response shapes are mirrored byte-for-byte; when they stop matching,
    the client reports ErrProtocol rather than guessing, since that means
    the vendor changed the API.

Resilience is layered: a circuit breaker around the raw HTTP exchange,
bounded exponential retry for connection-level failures, a single
long-delay retry on HTTP 429, and no automatic retry at all for auth
failures.
*/
package paprika
