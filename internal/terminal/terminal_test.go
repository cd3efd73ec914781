package terminal

import (
	"bytes"
	"strings"
	"testing"

	"godoor/internal/stats"
	"godoor/internal/transport"
)

func escapeAdapter(input string) (*Adapter, *bytes.Buffer, *stats.Collector) {
	var out bytes.Buffer
	tr := transport.NewConsolePair(strings.NewReader(input), &out)
	st := stats.New()
	return New(tr, ModeEscape, st), &out, st
}

// ── escape-code mode ─────────────────────────────────────────────────

func TestAdapter_EscapeColors(t *testing.T) {
	a, out, _ := escapeAdapter("")

	if err := a.Print(ColorRed, "danger"); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[31mdanger\x1b[0m"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestAdapter_EscapeDefaultColorUnwrapped(t *testing.T) {
	a, out, _ := escapeAdapter("")

	if err := a.Print(ColorDefault, "plain"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "plain" {
		t.Errorf("got %q, want no SGR wrapping", out.String())
	}
}

func TestAdapter_EscapeCRLFExpansion(t *testing.T) {
	a, out, _ := escapeAdapter("")

	if err := a.Println(ColorDefault, "line one"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "line one\r\n" {
		t.Errorf("got %q, want CRLF line ending", out.String())
	}

	out.Reset()
	// Already-CRLF input must not double the carriage returns.
	if err := a.Print(ColorDefault, "a\r\nb\n"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "a\r\nb\r\n" {
		t.Errorf("got %q, want normalized CRLF", out.String())
	}
}

func TestAdapter_ClearScreen(t *testing.T) {
	a, out, _ := escapeAdapter("")

	if err := a.ClearScreen(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\x1b[2J\x1b[H" {
		t.Errorf("got %q", out.String())
	}
}

// ── native mode ──────────────────────────────────────────────────────

func TestAdapter_NativeWritesBypassTransport(t *testing.T) {
	var trOut, nativeOut bytes.Buffer
	tr := transport.NewConsolePair(strings.NewReader(""), &trOut)
	a := New(tr, ModeNative, nil)
	a.SetNativeOutput(&nativeOut)

	if err := a.Print(ColorDefault, "hello"); err != nil {
		t.Fatal(err)
	}
	if trOut.Len() != 0 {
		t.Errorf("native mode wrote %q through the transport", trOut.String())
	}
	if !strings.Contains(nativeOut.String(), "hello") {
		t.Errorf("native output %q missing text", nativeOut.String())
	}
}

func TestMode_String(t *testing.T) {
	if ModeNative.String() != "native" || ModeEscape.String() != "escape" {
		t.Error("Mode.String mismatch")
	}
}

// ── input and accounting ─────────────────────────────────────────────

func TestAdapter_Prompt(t *testing.T) {
	a, out, _ := escapeAdapter("fight\r\n")

	answer, err := a.Prompt(ColorCyan, "> ")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "fight" {
		t.Errorf("answer = %q", answer)
	}
	if !strings.Contains(out.String(), "\x1b[36m> \x1b[0m") {
		t.Errorf("prompt output %q missing colored prompt", out.String())
	}
}

func TestAdapter_StatsAccounting(t *testing.T) {
	a, _, st := escapeAdapter("cmd\r\n")

	if err := a.Print(ColorDefault, "hi"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.ReadLine(); err != nil {
		t.Fatal(err)
	}

	s := st.Snapshot()
	if s.BytesOut != 2 {
		t.Errorf("BytesOut = %d, want 2", s.BytesOut)
	}
	if s.LinesRead != 1 || s.BytesIn != 3 {
		t.Errorf("LinesRead=%d BytesIn=%d, want 1/3", s.LinesRead, s.BytesIn)
	}
}

// A nil stats collector must be tolerated everywhere.
func TestAdapter_NilStats(t *testing.T) {
	var out bytes.Buffer
	tr := transport.NewConsolePair(strings.NewReader("x\n"), &out)
	a := New(tr, ModeEscape, nil)

	if err := a.Print(ColorGreen, "ok"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.ReadLine(); err != nil {
		t.Fatal(err)
	}
}

func TestAdapter_CloseReleasesTransport(t *testing.T) {
	a, _, _ := escapeAdapter("")
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
