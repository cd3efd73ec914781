package dropfile

import (
	"os"
	"path/filepath"
	"strings"

	"godoor/config"
	derr "godoor/internal/errors"
)

// Parse reads path and detects the dialect from the file's shape, not
// its name or extension: door entries routinely point a DOOR.SYS
// setting at a DOOR32.SYS file and vice versa.
func Parse(path string) (Descriptor, error) {
	lines, err := readLines(path, "auto")
	if err != nil {
		return Descriptor{}, err
	}

	switch {
	case looksLikeDoor32(lines):
		return parseDoor32Lines(path, lines)
	case looksLikeDoorSys(lines):
		return parseDoorSysLines(path, lines)
	default:
		return Descriptor{}, derr.WrapDropFile(path, "auto", derr.ErrDropFileUnparsable)
	}
}

// Detect scans a node directory for a drop file: DOOR32.SYS first, then
// DOOR.SYS, matched case-insensitively (files written by DOS software
// arrive in every capitalization).  The found file is then parsed by
// shape as usual.
func Detect(dir string) (Descriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Descriptor{}, derr.WrapDropFile(dir, "auto", derr.ErrDropFileMissing)
	}

	for _, want := range []string{config.Door32FileName, config.DoorSysFileName} {
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(e.Name(), want) {
				continue
			}
			return Parse(filepath.Join(dir, e.Name()))
		}
	}

	return Descriptor{}, derr.WrapDropFile(dir, "auto", derr.ErrDropFileMissing)
}
