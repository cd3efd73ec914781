package util

import (
	"bufio"
	"io"
)

// DefaultBufSize is the buffer size for transport line reading (4 KiB;
// door sessions are line-at-a-time, not bulk transfer).
const DefaultBufSize = 4 * 1024

// Telnet protocol bytes.  Socket callers usually arrive through a telnet
// bridge, so IAC command sequences show up interleaved with user input
// and must not leak into the line the game sees.
const (
	telnetIAC  = 0xFF
	telnetSB   = 0xFA // subnegotiation begin
	telnetSE   = 0xF0 // subnegotiation end
	telnetWILL = 0xFB
	telnetWONT = 0xFC
	telnetDO   = 0xFD
	telnetDONT = 0xFE
)

// LineReader reads terminator-delimited lines from a byte stream,
// tolerating all three historical line endings (CR, LF, CRLF) and
// optionally filtering telnet IAC sequences.
type LineReader struct {
	r        *bufio.Reader
	stripIAC bool
	pendLF   bool // last line ended with CR; swallow an immediately following LF
}

// NewLineReader wraps r with a buffered line reader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, DefaultBufSize)}
}

// StripTelnet enables telnet IAC filtering (socket transports only).
func (lr *LineReader) StripTelnet(on bool) { lr.stripIAC = on }

// ReadLine blocks until a full line arrives or the stream ends.  The
// returned line excludes the terminator.  A final unterminated line is
// returned with a nil error; the next call reports io.EOF.
func (lr *LineReader) ReadLine() (string, error) {
	var line []byte
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}

		if lr.pendLF {
			lr.pendLF = false
			if b == '\n' {
				continue
			}
		}

		switch {
		case b == '\n':
			return string(line), nil
		case b == '\r':
			lr.pendLF = true
			return string(line), nil
		case lr.stripIAC && b == telnetIAC:
			lit, err := lr.consumeIAC()
			if err != nil {
				if err == io.EOF && len(line) > 0 {
					return string(line), nil
				}
				return "", err
			}
			if lit {
				line = append(line, telnetIAC)
			}
		default:
			line = append(line, b)
		}
	}
}

// consumeIAC eats one telnet command sequence following an IAC byte.
// It reports whether the sequence was an escaped literal 0xFF.
func (lr *LineReader) consumeIAC() (literal bool, err error) {
	cmd, err := lr.r.ReadByte()
	if err != nil {
		return false, err
	}
	switch cmd {
	case telnetIAC:
		return true, nil // IAC IAC = data byte 0xFF
	case telnetWILL, telnetWONT, telnetDO, telnetDONT:
		_, err = lr.r.ReadByte() // option byte
		return false, err
	case telnetSB:
		// Skip subnegotiation payload up to IAC SE.
		for {
			b, err := lr.r.ReadByte()
			if err != nil {
				return false, err
			}
			if b != telnetIAC {
				continue
			}
			next, err := lr.r.ReadByte()
			if err != nil {
				return false, err
			}
			if next == telnetSE {
				return false, nil
			}
		}
	default:
		return false, nil // two-byte command
	}
}
