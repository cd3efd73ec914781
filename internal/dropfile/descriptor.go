// Package dropfile parses the text files a BBS writes before launching
// a door, normalizing two dialects into one session descriptor.
//
// Two dialects are supported: DOOR32.SYS (modern, carries an inherited
// socket handle) and the 52-line GAP-style DOOR.SYS (legacy, console or
// serial only).  Both are ordered newline-separated fields with no
// keys; position is the wire contract.  BBS configuration is frequently
// wrong about which file it writes, so shape detection never trusts
// the file name.
package dropfile

import (
	"os"
	"strconv"
	"strings"

	derr "godoor/internal/errors"
)

// SourceKind identifies which dialect produced a descriptor.
type SourceKind int

const (
	SourceNone   SourceKind = iota // no BBS controls the process
	SourceDoor32                   // modern DOOR32.SYS
	SourceDoorSys                  // legacy DOOR.SYS
)

func (k SourceKind) String() string {
	switch k {
	case SourceDoor32:
		return "door32"
	case SourceDoorSys:
		return "doorsys"
	default:
		return "none"
	}
}

// CommKind is the transport the drop file requests.
type CommKind int

const (
	CommLocal CommKind = iota
	CommSerial
	CommSocket
)

func (k CommKind) String() string {
	switch k {
	case CommSerial:
		return "serial"
	case CommSocket:
		return "socket"
	default:
		return "local"
	}
}

// Emulation is the caller's declared terminal capability.
type Emulation int

const (
	EmulASCII Emulation = iota
	EmulANSI
)

// Descriptor is the normalized view of a drop file.  It is built once
// during bootstrap and never mutated.
//
// When SourceKind is SourceNone, no BBS controls the process and every
// other field must be ignored.
type Descriptor struct {
	SourceKind SourceKind
	SourcePath string

	UserName   string // real name
	UserAlias  string // chosen handle; preferred for display
	UserRecord int    // per-BBS user id, recognizes returning players

	Comm         CommKind
	SocketHandle int    // inherited descriptor; -1 unless SourceDoor32 with comm type 2
	ComPort      string // only when Comm == CommSerial
	Baud         int

	BBSName       string
	SecurityLevel int
	MinutesLeft   int
	Emulation     Emulation
	Node          int
}

// DisplayName returns the alias when the caller chose one, otherwise
// the real name.
func (d *Descriptor) DisplayName() string {
	if d.UserAlias != "" {
		return d.UserAlias
	}
	return d.UserName
}

// Offline returns the descriptor for a session no BBS is driving
// (local testing).
func Offline() Descriptor {
	return Descriptor{SourceKind: SourceNone, Comm: CommLocal, SocketHandle: -1}
}

// ── shared parsing helpers ───────────────────────────────────────────

// readLines loads a drop file and splits it into trimmed lines.  CRLF
// endings are the norm (the files come from DOS-era software).
func readLines(path, dialect string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, derr.WrapDropFile(path, dialect, derr.ErrDropFileMissing)
		}
		return nil, derr.WrapDropFile(path, dialect, err)
	}

	raw := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(strings.TrimSuffix(l, "\r"))
	}
	return lines, nil
}

// field returns line i (0-based) or "" when the file is shorter.
// Missing trailing fields are a fact of life, not an error.
func field(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

// intField parses line i as an integer, falling back to def.
func intField(lines []string, i, def int) int {
	v := field(lines, i)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
