// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package main

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/JoshuaSkootsky/lfqueue/lfqueue"
)

// dumpf logs a one-line snapshot of the ring contents and the range list
// in p. It is not thread-safe: it reads the ring bytes with no
// synchronization at all (see Queue.DebugSnapshot) and must only be
// called from the single goroutine driving this demo.
func dumpf(q *lfqueue.Queue, logger log.Logger, p *lfqueue.RangeDescriptor) {
	data := q.DebugSnapshot()

	ranges := "["
	for i, rg := range p.FullRanges() {
		if i > 0 {
			ranges += " "
		}
		ranges += fmt.Sprintf("%d,%d", rg.Position, rg.Length)
	}
	ranges += "]"

	reserved := "no"
	if p.HasReservation() {
		r := p.Reservation()
		reserved = fmt.Sprintf("yes (%d,%d)", r.Position, r.Length)
	}

	_ = level.Debug(logger).Log(
		"msg", "buffer dump",
		"data", fmt.Sprintf("%q", data),
		"ranges", ranges,
		"reserved", reserved,
	)
}
