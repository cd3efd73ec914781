package dropfile

import (
	"strconv"

	"godoor/config"
	derr "godoor/internal/errors"
)

// DOOR32.SYS positional layout (0-based line numbers).  Eleven lines in
// the wild, but trailing lines go missing constantly and must default.
const (
	d32CommType = iota // 0=local, 1=serial, 2=telnet socket
	d32Handle          // socket handle or COM port number
	d32Baud
	d32BBSName // BBS software name and version
	d32UserRecord
	d32RealName
	d32Alias
	d32Security
	d32Minutes
	d32Emulation // 0=ASCII, 1=ANSI
	d32Node
)

// ParseDoor32 parses path as a DOOR32.SYS drop file.
//
// The file is considered unparsable only when its first line is not a
// valid comm-type code; everything after that defaults when absent, so
// a truncated file still produces a usable descriptor.
func ParseDoor32(path string) (Descriptor, error) {
	lines, err := readLines(path, "door32")
	if err != nil {
		return Descriptor{}, err
	}
	return parseDoor32Lines(path, lines)
}

func parseDoor32Lines(path string, lines []string) (Descriptor, error) {
	commCode, err := strconv.Atoi(field(lines, d32CommType))
	if err != nil || commCode < 0 || commCode > 2 {
		return Descriptor{}, derr.WrapDropFile(path, "door32", derr.ErrDropFileUnparsable)
	}

	d := Descriptor{
		SourceKind:    SourceDoor32,
		SourcePath:    path,
		SocketHandle:  -1,
		Baud:          intField(lines, d32Baud, config.DefaultBaud),
		BBSName:       field(lines, d32BBSName),
		UserRecord:    intField(lines, d32UserRecord, 0),
		UserName:      field(lines, d32RealName),
		UserAlias:     field(lines, d32Alias),
		SecurityLevel: intField(lines, d32Security, 0),
		MinutesLeft:   intField(lines, d32Minutes, 0),
		Node:          intField(lines, d32Node, 1),
	}

	if intField(lines, d32Emulation, 1) == 1 {
		d.Emulation = EmulANSI
	}

	switch commCode {
	case 1:
		d.Comm = CommSerial
		if n := intField(lines, d32Handle, 0); n > 0 {
			d.ComPort = "COM" + strconv.Itoa(n)
		}
	case 2:
		d.Comm = CommSocket
		d.SocketHandle = intField(lines, d32Handle, -1)
	default:
		d.Comm = CommLocal
	}

	return d, nil
}

// looksLikeDoor32 is the shape test used by auto-detection: a leading
// comm-type code followed by a numeric handle line.  DOOR.SYS can never
// match because its first line is a COM port name.
func looksLikeDoor32(lines []string) bool {
	code, err := strconv.Atoi(field(lines, d32CommType))
	if err != nil || code < 0 || code > 2 {
		return false
	}
	if f := field(lines, d32Handle); f != "" {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}
