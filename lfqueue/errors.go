// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package lfqueue

import "errors"

// The closed set of non-nil errors a Queue operation can return. nil
// stands in for success.
var (
	// ErrEmpty: Fetch found no committed ranges. Back-pressure, expected
	// in normal operation.
	ErrEmpty = errors.New("lfqueue: empty")

	// ErrBufferTooSmall: Fetch's destination buffer is shorter than the
	// oldest committed message. Caller misuse.
	ErrBufferTooSmall = errors.New("lfqueue: buffer too small")

	// ErrNotEnoughSpace: Reserve asked for more bytes than are free, or
	// MaxMessages messages are already committed. Back-pressure, expected
	// in normal operation.
	ErrNotEnoughSpace = errors.New("lfqueue: not enough space")

	// ErrAlreadyReserved: Reserve called while a reservation is already
	// outstanding. Back-pressure, expected in normal operation.
	ErrAlreadyReserved = errors.New("lfqueue: already reserved")

	// ErrSameRangeList: Store called with its reservation and private
	// buffers pointing at the same RangeDescriptor. Caller misuse.
	ErrSameRangeList = errors.New("lfqueue: same range list")

	// ErrDifferentByteCountThanReserved: Store's payload length does not
	// match the length that was reserved. Caller misuse.
	ErrDifferentByteCountThanReserved = errors.New("lfqueue: different byte count than reserved")

	// ErrRangeListInUse: Reserve or Fetch was handed a private buffer
	// that is currently the published descriptor. Caller misuse.
	ErrRangeListInUse = errors.New("lfqueue: range list in use")

	// ErrCASUnsuccessful: the publication CAS lost the race. Transient;
	// the caller retries.
	ErrCASUnsuccessful = errors.New("lfqueue: cas unsuccessful")

	// ErrFileABug: Store's view of the reservation diverged from the
	// published descriptor's. This should never occur in correct SPSC
	// use; no recovery is attempted.
	ErrFileABug = errors.New("lfqueue: file a bug")
)
