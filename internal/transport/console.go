package transport

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"godoor/util"
)

// Console reads and writes the process's inherited standard streams.
// Open always succeeds, which makes it the universal fallback when a
// socket or serial port cannot be adopted.
type Console struct {
	in  io.Reader
	out io.Writer

	r    *util.LineReader
	once sync.Once
}

// NewConsole returns a transport over os.Stdin/os.Stdout.
func NewConsole() *Console {
	return &Console{in: os.Stdin, out: os.Stdout}
}

// NewConsolePair returns a console transport over arbitrary streams.
// Used by tests and by BBSes that redirect the door's standard I/O.
func NewConsolePair(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Open never fails for the console.
func (c *Console) Open() error {
	c.r = util.NewLineReader(c.in)
	return nil
}

// ReadLine blocks for one line of local input.
func (c *Console) ReadLine() (string, error) {
	if c.r == nil {
		c.r = util.NewLineReader(c.in)
	}
	return c.r.ReadLine()
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Close releases nothing: the standard streams belong to the process,
// not to us.  Idempotent by construction.
func (c *Console) Close() error {
	c.once.Do(func() {})
	return nil
}

func (c *Console) Kind() Kind { return KindConsole }

// StdoutIsTerminal reports whether standard output is attached to a
// real terminal.  Native color mode is pointless when output is a
// pipe or a redirect.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
