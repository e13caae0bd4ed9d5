// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package lfqueue

// This file exists to support external debug-dump tooling (see
// cmd/lfqueuedemo) without giving that tooling access to unexported
// fields. The accessors below are safe to call on any RangeDescriptor the
// caller already owns. DebugSnapshot is not: it peeks at ring memory with
// no synchronization and is out of scope for the queue's own correctness
// guarantees.

// HasReservation reports whether d carries an outstanding reservation.
func (d *RangeDescriptor) HasReservation() bool {
	return d.hasReservation
}

// Reservation returns d's reservation range. Only meaningful when
// HasReservation reports true.
func (d *RangeDescriptor) Reservation() Range {
	return d.reservation
}

// FullRanges returns a copy of d's committed ranges, oldest first.
func (d *RangeDescriptor) FullRanges() []Range {
	out := make([]Range, d.fullCount)
	copy(out, d.full[:d.fullCount])
	return out
}

// DebugSnapshot returns a copy of the raw ring bytes at the moment of the
// call.
//
// This performs no synchronization with the publication cell: a
// concurrent Reserve, Store, or Fetch may be mutating the very bytes
// being copied. It exists only to support offline debug dumps. Never
// call this from code whose correctness depends on the result.
func (q *Queue) DebugSnapshot() []byte {
	out := make([]byte, len(q.ring.buf))
	copy(out, q.ring.buf)
	return out
}

// Published returns the currently published descriptor. Like
// DebugSnapshot, this is a point-in-time read intended for diagnostics;
// by the time the caller inspects the result it may no longer be the
// authoritative descriptor.
func (q *Queue) Published() *RangeDescriptor {
	return q.cell.Load()
}
