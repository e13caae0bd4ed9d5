// Copyright (c) 2025 Joshua Skootsky
//
// Licensed under the Business Source License 1.1
// You may use this file only in compliance with one of:
// 1. BSL-1.1 (non-production use is free)
// 2. Commercial License (contact for pricing)
//
// After 4 years (2029-01-01), this becomes Apache-2.0

package lfqueue

import "testing"

func TestRangeDescriptor_FreeBytes(t *testing.T) {
	var d RangeDescriptor
	if got := d.freeBytes(27); got != 27 {
		t.Fatalf("empty descriptor: got %d free bytes, want 27", got)
	}

	d.appendFull(Range{Position: 0, Length: 14})
	if got := d.freeBytes(27); got != 13 {
		t.Fatalf("after one full range: got %d free bytes, want 13", got)
	}

	d.hasReservation = true
	d.reservation = Range{Position: 14, Length: 5}
	if got := d.freeBytes(27); got != 8 {
		t.Fatalf("after reservation: got %d free bytes, want 8", got)
	}
}

func TestRangeDescriptor_TailIndex(t *testing.T) {
	var d RangeDescriptor
	if got := d.tailIndex(27); got != 0 {
		t.Fatalf("empty descriptor: tail %d, want 0", got)
	}

	d.appendFull(Range{Position: 0, Length: 14})
	if got := d.tailIndex(27); got != 14 {
		t.Fatalf("after one full range: tail %d, want 14", got)
	}

	d.appendFull(Range{Position: 14, Length: 12})
	if got := d.tailIndex(27); got != 26 {
		t.Fatalf("after two full ranges: tail %d, want 26", got)
	}
}

func TestRangeDescriptor_TailIndex_Wraps(t *testing.T) {
	var d RangeDescriptor
	d.appendFull(Range{Position: 20, Length: 14}) // ends at 34, mod 27 == 7
	if got := d.tailIndex(27); got != 7 {
		t.Fatalf("tail after wrapping full range: got %d, want 7", got)
	}
}

func TestRangeDescriptor_AppendAndPopFront(t *testing.T) {
	var d RangeDescriptor
	d.appendFull(Range{Position: 0, Length: 14})
	d.appendFull(Range{Position: 14, Length: 12})

	if d.fullCount != 2 {
		t.Fatalf("fullCount = %d, want 2", d.fullCount)
	}

	d.popFront()
	if d.fullCount != 1 {
		t.Fatalf("fullCount after pop = %d, want 1", d.fullCount)
	}
	if d.full[0] != (Range{Position: 14, Length: 12}) {
		t.Fatalf("unexpected remaining range: %+v", d.full[0])
	}

	d.popFront()
	if d.fullCount != 0 {
		t.Fatalf("fullCount after second pop = %d, want 0", d.fullCount)
	}
}

func TestRangeDescriptor_Clone(t *testing.T) {
	var src, dst RangeDescriptor
	src.appendFull(Range{Position: 0, Length: 5})
	src.hasReservation = true
	src.reservation = Range{Position: 5, Length: 3}

	src.clone(&dst)

	if dst.fullCount != 1 || dst.full[0] != (Range{Position: 0, Length: 5}) {
		t.Fatalf("clone did not copy full ranges: %+v", dst)
	}
	if !dst.hasReservation || dst.reservation != (Range{Position: 5, Length: 3}) {
		t.Fatalf("clone did not copy reservation: %+v", dst)
	}

	// Mutating dst must not affect src (value semantics, no aliasing).
	dst.full[0].Length = 99
	if src.full[0].Length != 5 {
		t.Fatalf("clone aliased the full-range array")
	}
}

func TestRangeDescriptor_Validate(t *testing.T) {
	var d RangeDescriptor
	if err := d.Validate(27); err != nil {
		t.Fatalf("empty descriptor should validate: %v", err)
	}

	d.appendFull(Range{Position: 0, Length: 14})
	d.appendFull(Range{Position: 14, Length: 12})
	if err := d.Validate(27); err != nil {
		t.Fatalf("contiguous descriptor should validate: %v", err)
	}

	d.hasReservation = true
	d.reservation = Range{Position: 26, Length: 1}
	if err := d.Validate(27); err != nil {
		t.Fatalf("reservation at tail should validate: %v", err)
	}

	d.reservation = Range{Position: 0, Length: 1}
	if err := d.Validate(27); err == nil {
		t.Fatalf("reservation not at tail should fail")
	}
}

func TestRangeDescriptor_Validate_OverlapDetected(t *testing.T) {
	var d RangeDescriptor
	d.appendFull(Range{Position: 0, Length: 10})
	// Force an overlapping second "full" range directly (bypassing
	// appendFull's trust that callers only ever hand it disjoint ranges)
	// to exercise Validate's overlap check.
	d.full[1] = Range{Position: 5, Length: 10}
	d.fullCount = 2

	if err := d.Validate(27); err == nil {
		t.Fatalf("overlapping full ranges should fail")
	}
}
