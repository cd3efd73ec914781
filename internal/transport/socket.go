package transport

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"

	derr "godoor/internal/errors"
	"godoor/util"
)

// Socket adopts the already-connected socket descriptor a DOOR32.SYS
// drop file hands down.  The BBS accepted the call; we inherit its
// file descriptor rather than dialing anything.
type Socket struct {
	Handle int // inherited descriptor number from the drop file

	conn     net.Conn
	r        *util.LineReader
	once     sync.Once
	closeErr error
}

// NewSocket returns an unopened socket transport for the given handle.
func NewSocket(handle int) *Socket {
	return &Socket{Handle: handle}
}

// Open adopts the inherited descriptor.  It fails when the handle is
// negative, not a socket, or already closed; all are symptoms of a stale
// or hand-edited drop file.
func (s *Socket) Open() error {
	if s.Handle < 0 {
		return derr.WrapTransport("socket", strconv.Itoa(s.Handle),
			fmt.Errorf("no socket handle in drop file"))
	}

	// net.FileConn duplicates the descriptor, so the temporary
	// os.File can be closed immediately either way.
	f := os.NewFile(uintptr(s.Handle), "door-socket")
	if f == nil {
		return derr.WrapTransport("socket", strconv.Itoa(s.Handle),
			fmt.Errorf("invalid descriptor"))
	}
	conn, err := net.FileConn(f)
	f.Close()
	if err != nil {
		return derr.WrapTransport("socket", strconv.Itoa(s.Handle), err)
	}

	s.conn = conn
	s.r = util.NewLineReader(conn)
	s.r.StripTelnet(true) // socket callers arrive via telnet bridges
	return nil
}

// ReadLine blocks until the caller sends a full line or disconnects.
func (s *Socket) ReadLine() (string, error) {
	if s.conn == nil {
		return "", derr.ErrNotOpen
	}
	return s.r.ReadLine()
}

func (s *Socket) Write(p []byte) (int, error) {
	if s.conn == nil {
		return 0, derr.ErrNotOpen
	}
	return s.conn.Write(p)
}

// Close releases the adopted connection exactly once.
func (s *Socket) Close() error {
	s.once.Do(func() {
		if s.conn != nil {
			s.closeErr = s.conn.Close()
		}
	})
	return s.closeErr
}

func (s *Socket) Kind() Kind { return KindSocket }
