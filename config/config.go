// Package config defines the runtime configuration for godoor and
// provides helpers for parsing serial-port specifications.
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Source identifies where the session descriptor comes from.  The four
// drop-file directives form a mutually exclusive group; the first one
// recognized on the command line wins and the rest are ignored.
type Source int

const (
	SourceUnset   Source = iota
	SourceAuto           // --dropfile: detect dialect from file shape
	SourceDoor32         // --door32: parse as DOOR32.SYS
	SourceDoorSys        // --doorsys: parse as DOOR.SYS
	SourceNodeDir        // --node-dir: scan a node directory
	SourceLocal          // --local: synthesize an offline descriptor
)

func (s Source) String() string {
	switch s {
	case SourceAuto:
		return "dropfile"
	case SourceDoor32:
		return "door32"
	case SourceDoorSys:
		return "doorsys"
	case SourceNodeDir:
		return "node-dir"
	case SourceLocal:
		return "local"
	default:
		return "unset"
	}
}

// Config holds every tuneable for a single door session.
type Config struct {
	// ── Descriptor source ────────────────────────────────────────────
	Source       Source
	DropFilePath string // with SourceAuto/SourceDoor32/SourceDoorSys
	NodeDir      string // with SourceNodeDir

	// ── Transport overrides (recorded in phase 1, applied in phase 3)
	ForceStdio bool   // --stdio: local transport + escape-code output
	SerialPort string // --serial: force serial on this port ("" = no override)
	Baud       int    // serial line rate when the drop file names none

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	DryRun  bool // resolve and report, open nothing
}

// ── Serial-port spec parser ──────────────────────────────────────────

// comRe matches DOS-style COM port names, with or without the
// trailing colon BBS configs often carry.
var comRe = regexp.MustCompile(`(?i)^com([0-9]+):?$`)

// ParseComPortSpec normalizes a serial-port specification.  Accepted
// forms: "COM3", "com3:", a bare number ("3" → "COM3"), or a device
// path such as "/dev/ttyS0" (returned as-is).
func ParseComPortSpec(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", fmt.Errorf("empty serial port spec")
	}

	if m := comRe.FindStringSubmatch(spec); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return "", fmt.Errorf("invalid COM port number %q", m[1])
		}
		return fmt.Sprintf("COM%d", n), nil
	}

	if n, err := strconv.Atoi(spec); err == nil {
		if n < 1 {
			return "", fmt.Errorf("invalid COM port number %d", n)
		}
		return fmt.Sprintf("COM%d", n), nil
	}

	if strings.HasPrefix(spec, "/dev/") {
		return spec, nil
	}

	return "", fmt.Errorf("unrecognized serial port spec %q", spec)
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceUnset:
		return fmt.Errorf("a drop-file source is required " +
			"(--dropfile, --door32, --doorsys, --node-dir, or --local)")
	case SourceAuto, SourceDoor32, SourceDoorSys:
		if c.DropFilePath == "" {
			return fmt.Errorf("--%s requires a path", c.Source)
		}
	case SourceNodeDir:
		if c.NodeDir == "" {
			return fmt.Errorf("--node-dir requires a directory")
		}
	}

	if c.SerialPort != "" {
		if _, err := ParseComPortSpec(c.SerialPort); err != nil {
			return fmt.Errorf("--serial: %w", err)
		}
	}

	if c.Baud != 0 {
		if !validBaud(c.Baud) {
			return fmt.Errorf("unsupported baud rate %d", c.Baud)
		}
	}

	return nil
}

// validBaud accepts the classic serial line rates.
func validBaud(b int) bool {
	switch b {
	case 300, 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200:
		return true
	}
	return false
}
