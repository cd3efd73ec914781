package util

import (
	"io"
	"strings"
	"testing"
)

// ── LineReader terminators ───────────────────────────────────────────

func TestLineReader_Terminators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "one\ntwo\n", []string{"one", "two"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"cr", "one\rtwo\r", []string{"one", "two"}},
		{"mixed", "one\r\ntwo\nthree\r", []string{"one", "two", "three"}},
		{"empty lines", "\r\n\r\n", []string{"", ""}},
		{"unterminated tail", "one\ntwo", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLineReader(strings.NewReader(tt.input))
			for i, want := range tt.want {
				got, err := lr.ReadLine()
				if err != nil {
					t.Fatalf("line %d: %v", i, err)
				}
				if got != want {
					t.Errorf("line %d = %q, want %q", i, got, want)
				}
			}
			if _, err := lr.ReadLine(); err != io.EOF {
				t.Errorf("after last line err = %v, want io.EOF", err)
			}
		})
	}
}

// ── Telnet IAC filtering ─────────────────────────────────────────────

func TestLineReader_StripTelnet(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			"negotiation before input",
			[]byte{0xFF, 0xFD, 0x01, 0xFF, 0xFB, 0x03, 'h', 'i', '\r', '\n'},
			"hi",
		},
		{
			"escaped literal 0xFF",
			[]byte{'a', 0xFF, 0xFF, 'b', '\n'},
			"a\xffb",
		},
		{
			"subnegotiation skipped",
			[]byte{0xFF, 0xFA, 0x18, 0x00, 'x', 0xFF, 0xF0, 'o', 'k', '\n'},
			"ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLineReader(strings.NewReader(string(tt.input)))
			lr.StripTelnet(true)
			got, err := lr.ReadLine()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineReader_IACPassthroughWhenDisabled(t *testing.T) {
	lr := NewLineReader(strings.NewReader("\xff\xfd\x01ok\n"))
	got, err := lr.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	if got != "\xff\xfd\x01ok" {
		t.Errorf("got %q, want raw bytes preserved", got)
	}
}
