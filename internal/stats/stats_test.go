package stats

import (
	"strings"
	"testing"
)

func TestCollector_Counters(t *testing.T) {
	c := New()
	c.BytesWritten(100)
	c.BytesWritten(50)
	c.BytesRead(7)
	c.LineRead()
	c.LineRead()

	s := c.Snapshot()
	if s.BytesOut != 150 {
		t.Errorf("BytesOut = %d, want 150", s.BytesOut)
	}
	if s.BytesIn != 7 {
		t.Errorf("BytesIn = %d, want 7", s.BytesIn)
	}
	if s.LinesRead != 2 {
		t.Errorf("LinesRead = %d, want 2", s.LinesRead)
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	c.BytesWritten(1)
	c.BytesRead(1)
	c.LineRead()

	if s := c.Snapshot(); s != (Snapshot{}) {
		t.Errorf("nil collector snapshot = %+v, want zero", s)
	}
}

func TestSnapshot_String(t *testing.T) {
	c := New()
	c.BytesWritten(42)
	out := c.Snapshot().String()
	if !strings.Contains(out, "out=42B") {
		t.Errorf("snapshot string %q missing byte count", out)
	}
}
