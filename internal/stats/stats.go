// Package stats provides lightweight counters for a door session's
// terminal I/O.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Collector tracks terminal traffic for one door session.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	bytesOut  atomic.Int64
	bytesIn   atomic.Int64
	linesRead atomic.Int64
	startTime time.Time
}

// New creates a collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// BytesWritten records n bytes sent to the caller's terminal.
func (c *Collector) BytesWritten(n int64) {
	if c == nil {
		return
	}
	c.bytesOut.Add(n)
}

// BytesRead records n bytes of caller input.
func (c *Collector) BytesRead(n int64) {
	if c == nil {
		return
	}
	c.bytesIn.Add(n)
}

// LineRead records one completed input line.
func (c *Collector) LineRead() {
	if c == nil {
		return
	}
	c.linesRead.Add(1)
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of session traffic.
type Snapshot struct {
	Uptime    time.Duration
	BytesOut  int64
	BytesIn   int64
	LinesRead int64
}

// Snapshot returns a copy of all current counters.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		Uptime:    time.Since(c.startTime).Truncate(time.Second),
		BytesOut:  c.bytesOut.Load(),
		BytesIn:   c.bytesIn.Load(),
		LinesRead: c.linesRead.Load(),
	}
}

// String renders the snapshot for shutdown diagnostics.
func (s Snapshot) String() string {
	return fmt.Sprintf("uptime=%s out=%dB in=%dB lines=%d",
		s.Uptime, s.BytesOut, s.BytesIn, s.LinesRead)
}
