// Copyright 2016 Tim Heckman. All rights reserved.
// Use of this source code is governed by the BSD 3-Clause
// license that can be found in the LICENSE file.

// Package lifxdevice tracks LIFX bulbs discovered on the LAN, refreshing
// their state over UDP as it goes stale.
package lifxdevice

import (
	"time"

	protocol "github.com/theckman/lifx/protocol"
)

// RefreshableData holds one attribute of a Bulb's state along with the
// message that should be sent to refresh it, and the point in time after
// which that cached value is considered stale.
//
// RefreshableData does no locking of its own; a Bulb's fields are only ever
// touched while the Manager's registry mutex is held.
type RefreshableData[T any] struct {
	value          *T
	lastUpdated    time.Time
	maxAge         time.Duration
	refreshRequest *protocol.Packet
}

// NewRefreshableData returns a RefreshableData with no cached value, so the
// first call to NeedsRefresh reports true.
func NewRefreshableData[T any](maxAge time.Duration, refreshRequest *protocol.Packet) *RefreshableData[T] {
	return &RefreshableData[T]{
		maxAge:         maxAge,
		refreshRequest: refreshRequest,
	}
}

// NeedsRefresh reports whether the cached value is missing or older than
// maxAge.
func (r *RefreshableData[T]) NeedsRefresh() bool {
	if r.value == nil {
		return true
	}
	return time.Since(r.lastUpdated) > r.maxAge
}

// Update stores v as the current value and resets the staleness clock.
func (r *RefreshableData[T]) Update(v T) {
	r.value = &v
	r.lastUpdated = time.Now()
}

// Value returns the cached value and whether one has ever been set. The
// bool does not reflect staleness -- callers that care should check
// NeedsRefresh first.
func (r *RefreshableData[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

// RefreshRequest returns the packet that should be sent to the device to
// populate or refresh this value.
func (r *RefreshableData[T]) RefreshRequest() *protocol.Packet {
	return r.refreshRequest
}
