// Package session binds one door connection's descriptor, terminal,
// and save namespace into a single value built once by the bootstrap
// and threaded explicitly through the application.  There is no
// ambient "door mode" global anywhere.
package session

import (
	"strings"

	"godoor/config"
	"godoor/internal/dropfile"
	"godoor/internal/stats"
	"godoor/internal/terminal"
	"godoor/util"
)

// Session is the runtime context for a single caller.  One per
// process: the BBS spawns a fresh process per connection.
type Session struct {
	Descriptor dropfile.Descriptor
	Term       *terminal.Adapter

	// SaveNamespace isolates persisted state between BBSes sharing one
	// binary.  Empty means "use the default save directory".
	SaveNamespace string

	Stats  *stats.Collector
	Logger *util.Logger
}

// New builds a session around an adapter the bootstrap already
// constructed.
func New(desc dropfile.Descriptor, term *terminal.Adapter, ns string,
	st *stats.Collector, logger *util.Logger) *Session {
	return &Session{
		Descriptor:    desc,
		Term:          term,
		SaveNamespace: ns,
		Stats:         st,
		Logger:        logger,
	}
}

// Close releases the transport (through the adapter that owns it) and
// logs traffic totals.  Safe to call more than once; intended as the
// sole deferred cleanup on every exit path.
func (s *Session) Close() error {
	err := s.Term.Close()
	if s.Logger != nil {
		s.Logger.Debug("session closed: %s", s.Stats.Snapshot())
	}
	return err
}

// ── save-namespace derivation ────────────────────────────────────────

// Namespace sanitizes a BBS name into a directory-safe token: lower
// case, `a-z 0-9 . _ -` only, runs of anything else collapsed to one
// underscore, trimmed, capped at config.MaxNamespaceLen bytes.  The
// result is deterministic and idempotent; "" means no namespace.
func Namespace(bbsName string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(bbsName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '_':
			pendingSep = true
		default:
			pendingSep = true
		}
	}

	out := b.String()
	if len(out) > config.MaxNamespaceLen {
		out = out[:config.MaxNamespaceLen]
	}
	return strings.Trim(out, "._-")
}
