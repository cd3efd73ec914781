// Package transport provides the byte channels a door session can run
// over.  Transports handle the "how" of data movement (an inherited
// socket, a FOSSIL-style serial port, or the process's own standard
// streams) independent of what the game writes over them (which is
// the terminal adapter's job).
//
// A door never dials or listens: the BBS established the call before
// spawning the process, so every transport adopts an existing channel.
// One transport lives per process, opened during bootstrap and closed
// exactly once at shutdown.
package transport

// Kind identifies a transport variant.  The set is closed: every door
// session runs over exactly one of these three.
type Kind int

const (
	KindConsole Kind = iota
	KindSerial
	KindSocket
)

func (k Kind) String() string {
	switch k {
	case KindSerial:
		return "serial"
	case KindSocket:
		return "socket"
	default:
		return "console"
	}
}

// Transport is a live byte channel to the caller's terminal.
//
// ReadLine blocks until a full line arrives or the caller disconnects;
// there is no cancellation primitive; only the remote end closing the
// channel unblocks it.  Close is idempotent and safe to call even when
// Open never succeeded.
type Transport interface {
	Open() error
	ReadLine() (string, error)
	Write(p []byte) (n int, err error)
	Close() error
	Kind() Kind
}
