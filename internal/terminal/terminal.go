// Package terminal presents one uniform text interface to the game
// (write colored text, clear the screen, read a line) regardless of
// which transport carries the session.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"godoor/internal/stats"
	"godoor/internal/transport"
)

// Mode selects how color reaches the caller.  It is fixed at
// construction and never changes mid-session.
type Mode int

const (
	// ModeNative colors via the hosting console's own API.  Only
	// valid when the transport is the local console and nothing
	// forces escape codes.
	ModeNative Mode = iota

	// ModeEscape writes literal ANSI SGR sequences into the byte
	// stream, which is the only thing that reaches a remote caller.
	ModeEscape
)

func (m Mode) String() string {
	if m == ModeNative {
		return "native"
	}
	return "escape"
}

const clearSequence = "\x1b[2J\x1b[H"

// Adapter wraps exactly one Transport and owns it: closing the adapter
// closes the transport, and nothing else may touch it.
type Adapter struct {
	tr    transport.Transport
	mode  Mode
	stats *stats.Collector

	// nativeOut is where native-mode output goes; color.Output is the
	// colorable stdout that turns SGR into console API calls where
	// needed.  Overridable for tests.
	nativeOut io.Writer
}

// New constructs an adapter over an already-opened transport.
func New(tr transport.Transport, mode Mode, st *stats.Collector) *Adapter {
	return &Adapter{tr: tr, mode: mode, stats: st, nativeOut: color.Output}
}

// Mode reports the output mode fixed at construction.
func (a *Adapter) Mode() Mode { return a.mode }

// TransportKind reports which transport variant carries the session.
func (a *Adapter) TransportKind() transport.Kind { return a.tr.Kind() }

// SetNativeOutput redirects native-mode output.  Test hook.
func (a *Adapter) SetNativeOutput(w io.Writer) { a.nativeOut = w }

// Print writes text in the given color.
func (a *Adapter) Print(c Color, text string) error {
	if a.mode == ModeNative {
		return a.printNative(c, text)
	}
	return a.printEscape(c, text)
}

// Printf formats and writes in the given color.
func (a *Adapter) Printf(c Color, format string, args ...interface{}) error {
	return a.Print(c, fmt.Sprintf(format, args...))
}

// Println writes text followed by a line break.
func (a *Adapter) Println(c Color, text string) error {
	return a.Print(c, text+"\n")
}

// ClearScreen wipes the caller's screen and homes the cursor.
func (a *Adapter) ClearScreen() error {
	if a.mode == ModeNative {
		_, err := io.WriteString(a.nativeOut, clearSequence)
		return err
	}
	return a.writeRaw(clearSequence)
}

// ReadLine blocks until the caller sends one line.
func (a *Adapter) ReadLine() (string, error) {
	line, err := a.tr.ReadLine()
	if err != nil {
		return "", err
	}
	a.stats.BytesRead(int64(len(line)))
	a.stats.LineRead()
	return line, nil
}

// Prompt writes a colored prompt, then reads the response line.
func (a *Adapter) Prompt(c Color, text string) (string, error) {
	if err := a.Print(c, text); err != nil {
		return "", err
	}
	return a.ReadLine()
}

// Close releases the underlying transport.  Idempotent, because the
// transport's own Close is.
func (a *Adapter) Close() error { return a.tr.Close() }

// ── output paths ─────────────────────────────────────────────────────

func (a *Adapter) printNative(c Color, text string) error {
	var err error
	if nc := c.native(); nc != nil {
		_, err = nc.Fprint(a.nativeOut, text)
	} else {
		_, err = io.WriteString(a.nativeOut, text)
	}
	if err == nil {
		a.stats.BytesWritten(int64(len(text)))
	}
	return err
}

func (a *Adapter) printEscape(c Color, text string) error {
	text = crlf(text)
	if seq := c.sgr(); seq != "" {
		text = seq + text + sgrReset
	}
	return a.writeRaw(text)
}

func (a *Adapter) writeRaw(s string) error {
	n, err := a.tr.Write([]byte(s))
	a.stats.BytesWritten(int64(n))
	return err
}

// crlf normalizes line breaks to CRLF, which is what remote terminals
// expect on the wire.
func crlf(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
