package transport

import (
	"sync"

	sp "go.bug.st/serial"

	derr "godoor/internal/errors"
	"godoor/util"
)

// Serial drives a FOSSIL-style virtualized COM port under the legacy
// door-serial convention: the BBS already answered the call, so there
// is no handshake; just open the named port and configure the line
// discipline for a terminal session.
type Serial struct {
	Port string // "COM3" or "/dev/ttyS2"
	Baud int

	port     sp.Port
	r        *util.LineReader
	once     sync.Once
	closeErr error
}

// NewSerial returns an unopened serial transport.
func NewSerial(port string, baud int) *Serial {
	return &Serial{Port: port, Baud: baud}
}

// Open claims the port at 8N1.  It fails when the port does not exist
// or another process holds it; the bootstrap downgrades to the
// console in that case rather than aborting.
func (s *Serial) Open() error {
	mode := &sp.Mode{
		BaudRate: s.Baud,
		DataBits: 8,
		Parity:   sp.NoParity,
		StopBits: sp.OneStopBit,
	}
	port, err := sp.Open(s.Port, mode)
	if err != nil {
		return derr.WrapTransport("serial", s.Port, err)
	}

	s.port = port
	s.r = util.NewLineReader(port)
	return nil
}

// ReadLine blocks until the caller sends a full line or the carrier
// drops.
func (s *Serial) ReadLine() (string, error) {
	if s.port == nil {
		return "", derr.ErrNotOpen
	}
	return s.r.ReadLine()
}

func (s *Serial) Write(p []byte) (int, error) {
	if s.port == nil {
		return 0, derr.ErrNotOpen
	}
	return s.port.Write(p)
}

// Close releases the port exactly once; safe when Open never succeeded.
func (s *Serial) Close() error {
	s.once.Do(func() {
		if s.port != nil {
			s.closeErr = s.port.Close()
		}
	})
	return s.closeErr
}

func (s *Serial) Kind() Kind { return KindSerial }
