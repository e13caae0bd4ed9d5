// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

// Package lfqueue provides a lock-free, single-producer single-consumer
// (SPSC) byte queue backed by a fixed-capacity circular byte buffer.
//
// # Thread-Safety Guarantees
//
// The queue is lock-free for its documented use case:
//   - A single goroutine may call Reserve and Store (the producer).
//   - A single goroutine may call Fetch (the consumer).
//   - Internalize may be called from any goroutine.
//
// Violating these constraints (more than one producer, or more than one
// consumer) is out of scope and will cause data races.
//
// # Protocol
//
// The producer reserves space for a message, writes the payload, then
// commits it:
//
//	var reserved, committed lfqueue.RangeDescriptor
//	if err := q.Reserve(uint64(len(payload)), &reserved); err != nil {
//	    // ErrAlreadyReserved, ErrNotEnoughSpace: back off and retry later.
//	    // ErrCASUnsuccessful: retry immediately with a fresh view.
//	}
//	if err := q.Store(payload, &reserved, &committed); err != nil {
//	    // ErrCASUnsuccessful: call Store again with the same arguments.
//	}
//
// The consumer fetches the oldest committed message:
//
//	buf := make([]byte, maxMessageSize)
//	var fetched lfqueue.RangeDescriptor
//	n, err := q.Fetch(buf, &fetched)
//	if err == nil {
//	    handle(buf[:n])
//	}
//
// Every RangeDescriptor a caller supplies is borrowed by the queue for the
// duration of a successful call: once it becomes the published
// descriptor, the caller must not pass it to another mutating call until
// it has either stopped being the published descriptor (because a later
// call published a newer one) or been released with Internalize.
package lfqueue

import "sync/atomic"

// Queue is a lock-free SPSC byte queue. The zero value is not usable; use
// New.
type Queue struct {
	ring      *byteRing
	debugFill bool

	cell atomic.Pointer[RangeDescriptor]

	// internal is the queue's own descriptor slot, used by Internalize to
	// reclaim a caller's buffer. There is exactly one; see Internalize's
	// doc comment for what that implies under concurrent Internalize
	// calls.
	internal RangeDescriptor
}

// New creates a Queue backed by a ring of the given byte capacity.
//
// When debugFill is true, free bytes are filled with '-', bytes reserved
// by Reserve are filled with 'r', and bytes released by a successful
// Fetch are refilled with '-'. When false, these fills are skipped
// entirely and untouched bytes are unspecified; this is the default for
// production use since the fills serve no correctness purpose.
//
// Panics if capacity is 0.
func New(capacity uint64, debugFill bool) *Queue {
	if capacity == 0 {
		panic("lfqueue: capacity must be greater than 0")
	}

	q := &Queue{
		ring:      newByteRing(capacity),
		debugFill: debugFill,
	}
	if debugFill {
		q.ring.fill(Range{Position: 0, Length: capacity}, '-')
	}
	q.cell.Store(&q.internal)
	return q
}

// Capacity returns the fixed byte capacity of the ring.
func (q *Queue) Capacity() uint64 {
	return q.ring.capacity()
}

// Reserve claims n bytes of ring space for the producer. On success, p
// becomes the published descriptor and carries the reservation; the
// producer must Store into exactly that reservation next. Reserve returns
// ErrNotEnoughSpace when fewer than n bytes are free or when MaxMessages
// messages are already committed.
//
// Reserve is producer-only: callers must never invoke it concurrently
// with another Reserve or with Store.
func (q *Queue) Reserve(n uint64, p *RangeDescriptor) error {
	current := q.cell.Load()
	if current == p {
		return ErrRangeListInUse
	}
	if current.hasReservation {
		return ErrAlreadyReserved
	}
	if current.fullCount >= MaxMessages || current.freeBytes(q.ring.capacity()) < n {
		return ErrNotEnoughSpace
	}

	current.clone(p)
	p.reservation = Range{Position: current.tailIndex(q.ring.capacity()), Length: n}
	p.hasReservation = true

	if !q.cell.CompareAndSwap(current, p) {
		return ErrCASUnsuccessful
	}

	if q.debugFill {
		q.ring.fill(p.reservation, 'r')
	}
	return nil
}

// Store writes buf into the space reserved by r (a descriptor previously
// published by a successful Reserve) and commits it, using p as the
// fresh private buffer for the resulting published descriptor.
//
// Store is producer-only. If Store returns ErrCASUnsuccessful, the
// payload has already been written and the reservation is still live in
// the published descriptor; call Store again with the same r, buf, and p
// (or a fresh p) to retry the publish step.
func (q *Queue) Store(buf []byte, r, p *RangeDescriptor) error {
	if r == p {
		return ErrSameRangeList
	}
	if r.reservation.Length != uint64(len(buf)) {
		return ErrDifferentByteCountThanReserved
	}

	current := q.cell.Load()
	if !current.hasReservation || current.reservation != r.reservation {
		return ErrFileABug
	}

	q.ring.write(current.reservation, buf)

	current.clone(p)
	p.appendFull(current.reservation)
	p.hasReservation = false
	p.reservation = Range{}

	if !q.cell.CompareAndSwap(current, p) {
		return ErrCASUnsuccessful
	}
	return nil
}

// Fetch copies the oldest committed message into dst and releases its
// space, using p as the fresh private buffer for the resulting published
// descriptor. Returns the number of bytes copied.
//
// Fetch is consumer-only. If Fetch returns ErrCASUnsuccessful, dst's
// contents are unspecified; retry with a fresh call.
func (q *Queue) Fetch(dst []byte, p *RangeDescriptor) (int, error) {
	current := q.cell.Load()
	if current == p {
		return 0, ErrRangeListInUse
	}
	if current.fullCount == 0 {
		return 0, ErrEmpty
	}

	head := current.full[0]
	if head.Length > uint64(len(dst)) {
		return 0, ErrBufferTooSmall
	}

	q.ring.read(head, dst[:head.Length])

	current.clone(p)
	p.popFront()

	if !q.cell.CompareAndSwap(current, p) {
		return 0, ErrCASUnsuccessful
	}

	if q.debugFill {
		q.ring.fill(head, '-')
	}
	return int(head.Length), nil
}

// Internalize releases x from the caller's ownership. If x is not
// currently the published descriptor, it returns nil immediately and the
// caller may reuse x right away. If x is published, Internalize copies
// its contents into the queue's own internal slot and swaps the
// publication cell to point there instead, after which the caller may
// reuse x.
//
// Internalize may be called from any goroutine. Because the queue keeps a
// single internal slot rather than a pool, two goroutines calling
// Internalize concurrently while x is published race on writing that
// slot before their respective CAS attempts; callers needing concurrent
// Internalize from more than one goroutine should serialize those calls.
func (q *Queue) Internalize(x *RangeDescriptor) error {
	current := q.cell.Load()
	if current != x {
		return nil
	}

	current.clone(&q.internal)

	if !q.cell.CompareAndSwap(current, &q.internal) {
		return ErrCASUnsuccessful
	}
	return nil
}
