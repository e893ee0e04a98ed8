// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package models

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// uidPattern is the identifier grammar the service requires: a UUID-shaped
// prefix followed by a 5-digit decimal group and a 16-character hex group.
var uidPattern = regexp.MustCompile(
	`^[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}-[0-9]{5}-[0-9A-Fa-f]{16}$`)

// NewUID generates a fresh recipe identifier in the service's required
// format. The UUID prefix carries the collision resistance; the trailing
// groups are independent random values formatted to match what the
// official apps emit.
func NewUID() string {
	var buf [12]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("uid entropy unavailable: %v", err))
	}

	suffix5 := binary.BigEndian.Uint32(buf[0:4]) % 100000
	suffix16 := binary.BigEndian.Uint64(buf[4:12])

	return fmt.Sprintf("%s-%05d-%016X", strings.ToUpper(uuid.NewString()), suffix5, suffix16)
}

// ValidUID reports whether uid matches the service's identifier grammar.
func ValidUID(uid string) bool {
	return uidPattern.MatchString(uid)
}
