package config

import (
	"testing"
)

// ── ParseComPortSpec ─────────────────────────────────────────────────

func TestParseComPortSpec(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"COM1", "COM1", false},
		{"COM3:", "COM3", false},
		{"com4", "COM4", false},
		{"  COM2  ", "COM2", false},
		{"3", "COM3", false},
		{"/dev/ttyS0", "/dev/ttyS0", false},
		{"/dev/ttyUSB1", "/dev/ttyUSB1", false},
		{"COM0", "", true}, // COM0 means "no port" in drop files, not a real device
		{"0", "", true},
		{"", "", true},
		{"LPT1", "", true},
		{"ttyS0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComPortSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// ── Validate ─────────────────────────────────────────────────────────

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"no source", Config{}, true},
		{"local", Config{Source: SourceLocal}, false},
		{"dropfile with path", Config{Source: SourceAuto, DropFilePath: "door.sys"}, false},
		{"dropfile missing path", Config{Source: SourceAuto}, true},
		{"door32 missing path", Config{Source: SourceDoor32}, true},
		{"node dir", Config{Source: SourceNodeDir, NodeDir: "/bbs/node1"}, false},
		{"node dir missing", Config{Source: SourceNodeDir}, true},
		{"serial override ok", Config{Source: SourceLocal, SerialPort: "COM2"}, false},
		{"serial override bad", Config{Source: SourceLocal, SerialPort: "nope"}, true},
		{"baud ok", Config{Source: SourceLocal, Baud: 9600}, false},
		{"baud bad", Config{Source: SourceLocal, Baud: 12345}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestSource_String(t *testing.T) {
	if SourceDoor32.String() != "door32" || SourceUnset.String() != "unset" {
		t.Error("Source.String mismatch")
	}
}
