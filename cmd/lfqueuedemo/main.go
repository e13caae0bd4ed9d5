// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

// Command lfqueuedemo is a small driver program that exercises the
// lfqueue package the way the original C++ implementation's main.cpp
// exercised LockFreeQueue: reserve, store, and fetch, all on a single
// goroutine, with each step logged. The sequence it runs never makes a
// reservation wrap around the end of the ring.
//
// It is a demonstration program, not a benchmark or a production
// service; the lfqueue package itself takes no dependency on logging or
// CLI flags, those concerns live here.
package main

import (
	"flag"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/JoshuaSkootsky/lfqueue/lfqueue"
)

// config holds the driver's top-level flags, mirroring the small
// flag.Bool/flag.Int set cmd/tempo/main.go parses before handing off to
// per-module configuration.
type config struct {
	capacity  uint64
	debugFill bool
}

func parseFlags(args []string) config {
	fs := flag.NewFlagSet("lfqueuedemo", flag.ExitOnError)
	capacity := fs.Uint64("capacity", 27, "ring buffer capacity in bytes")
	debugFill := fs.Bool("debug-fill", true, "fill free/reserved/released bytes with debug markers")
	_ = fs.Parse(args)
	return config{capacity: *capacity, debugFill: *debugFill}
}

func main() {
	cfg := parseFlags(os.Args[1:])

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "component", "lfqueuedemo")

	q := lfqueue.New(cfg.capacity, cfg.debugFill)
	_ = level.Info(logger).Log("msg", "queue initialized", "capacity", cfg.capacity, "debug_fill", cfg.debugFill)

	run(q, logger)
}

// run reserves and stores two messages, fetches them back in order, then
// attempts a final fetch against the now-empty queue.
func run(q *lfqueue.Queue, logger log.Logger) {
	var reservedA, committedA lfqueue.RangeDescriptor
	var reservedB, committedB lfqueue.RangeDescriptor
	var fetched1, fetched2, fetched3 lfqueue.RangeDescriptor

	msgA := []byte(">Hello World!<")
	msgB := []byte(">Kreuzberg!!")
	dst := make([]byte, 20)

	step(logger, "reserve", q.Reserve(uint64(len(msgA)), &reservedA))
	dumpf(q, logger, &reservedA)

	step(logger, "store", q.Store(msgA, &reservedA, &committedA))
	dumpf(q, logger, &committedA)

	step(logger, "reserve", q.Reserve(uint64(len(msgB)), &reservedB))
	dumpf(q, logger, &reservedB)

	step(logger, "store", q.Store(msgB, &reservedB, &committedB))
	dumpf(q, logger, &committedB)

	n, err := q.Fetch(dst, &fetched1)
	step(logger, "fetch", err)
	_ = level.Info(logger).Log("msg", "fetched message", "bytes", n, "payload", string(dst[:n]))
	dumpf(q, logger, &fetched1)

	n, err = q.Fetch(dst, &fetched2)
	step(logger, "fetch", err)
	_ = level.Info(logger).Log("msg", "fetched message", "bytes", n, "payload", string(dst[:n]))
	dumpf(q, logger, &fetched2)

	_, err = q.Fetch(dst, &fetched3)
	step(logger, "fetch on empty queue", err)

	for _, p := range []*lfqueue.RangeDescriptor{&reservedA, &committedA, &reservedB, &committedB, &fetched1, &fetched2, &fetched3} {
		for {
			if err := q.Internalize(p); err == nil {
				break
			}
		}
	}
	_ = level.Info(logger).Log("msg", "all buffers internalized, demo complete")
}

func step(logger log.Logger, name string, err error) {
	if err != nil {
		_ = level.Warn(logger).Log("msg", "operation returned an error", "op", name, "err", err)
		return
	}
	_ = level.Debug(logger).Log("msg", "operation succeeded", "op", name)
}
