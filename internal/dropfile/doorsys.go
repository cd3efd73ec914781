package dropfile

import (
	"regexp"
	"strconv"
	"strings"

	"godoor/config"
	derr "godoor/internal/errors"
)

// GAP-style DOOR.SYS positional layout, 0-based.  Only the fields this
// system consumes are named; the full file runs to 52 lines.  The
// mapping follows the layout circulated with real BBS door packages -
// it is a convention, not a published standard.
const (
	dsComPort  = 0  // "COM1:"; "COM0:" means a local login
	dsBaud     = 1  // line rate
	dsNode     = 3  // node number
	dsRealName = 9  // caller's full name
	dsSecurity = 14 // security level
	dsMinutes  = 18 // minutes remaining this call
	dsGraphics = 19 // "GR" = ANSI capable, "NG" = plain
	dsRecord   = 25 // user record number (1-based in the file)
	dsSysop    = 34 // sysop's name; best available BBS identifier
	dsAlias    = 35 // caller's handle
)

// doorSysComRe matches the COM-port line that opens every DOOR.SYS.
var doorSysComRe = regexp.MustCompile(`(?i)^com([0-9]+):?$`)

// ParseDoorSys parses path as a legacy 52-line DOOR.SYS drop file.
//
// There is no socket handle in this dialect: the session is console
// bound unless line 1 names a real COM port, in which case the
// transport is serial.
func ParseDoorSys(path string) (Descriptor, error) {
	lines, err := readLines(path, "doorsys")
	if err != nil {
		return Descriptor{}, err
	}
	return parseDoorSysLines(path, lines)
}

func parseDoorSysLines(path string, lines []string) (Descriptor, error) {
	m := doorSysComRe.FindStringSubmatch(field(lines, dsComPort))
	if m == nil {
		return Descriptor{}, derr.WrapDropFile(path, "doorsys", derr.ErrDropFileUnparsable)
	}

	d := Descriptor{
		SourceKind:    SourceDoorSys,
		SourcePath:    path,
		SocketHandle:  -1,
		Baud:          intField(lines, dsBaud, config.DefaultBaud),
		Node:          intField(lines, dsNode, 1),
		UserName:      field(lines, dsRealName),
		SecurityLevel: intField(lines, dsSecurity, 0),
		MinutesLeft:   intField(lines, dsMinutes, 0),
		UserRecord:    intField(lines, dsRecord, 0),
		BBSName:       field(lines, dsSysop),
		UserAlias:     field(lines, dsAlias),
	}

	if strings.EqualFold(field(lines, dsGraphics), "GR") {
		d.Emulation = EmulANSI
	}

	port, _ := strconv.Atoi(m[1])
	if port > 0 {
		d.Comm = CommSerial
		d.ComPort = "COM" + strconv.Itoa(port)
	} else {
		d.Comm = CommLocal // COM0: means the sysop logged in at the console
	}

	return d, nil
}

// looksLikeDoorSys is the shape test used by auto-detection.
func looksLikeDoorSys(lines []string) bool {
	return doorSysComRe.MatchString(field(lines, dsComPort))
}
