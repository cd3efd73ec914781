// Package core is the orchestration layer: it turns a parsed command
// line into a ready session.  This is the single dispatch point: the
// descriptor source, the transport fallback chain, and the output mode
// are all decided here and nowhere else.
//
// Bootstrap runs three strictly sequential phases with no backtracking:
// descriptor resolution (fatal on failure: a bad drop file means a
// misconfigured door entry), transport resolution (never fatal: every
// failure downgrades to the console), and namespace derivation.
package core

import (
	"godoor/config"
	"godoor/internal/dropfile"
	"godoor/internal/session"
	"godoor/internal/stats"
	"godoor/internal/terminal"
	"godoor/internal/transport"
	"godoor/util"
)

// factory builds unopened transports.  Tests substitute fakes so the
// fallback chain can be exercised without sockets or serial hardware.
type factory struct {
	socket  func(handle int) transport.Transport
	serial  func(port string, baud int) transport.Transport
	console func() transport.Transport
}

func defaultFactory() factory {
	return factory{
		socket:  func(h int) transport.Transport { return transport.NewSocket(h) },
		serial:  func(p string, b int) transport.Transport { return transport.NewSerial(p, b) },
		console: func() transport.Transport { return transport.NewConsole() },
	}
}

// Bootstrap builds the session for a validated configuration.  The
// returned session's Close releases the transport; it must run on
// every exit path.
func Bootstrap(cfg *config.Config, logger *util.Logger) (*session.Session, error) {
	return bootstrapWith(cfg, logger, defaultFactory())
}

func bootstrapWith(cfg *config.Config, logger *util.Logger, f factory) (*session.Session, error) {
	desc, err := Describe(cfg)
	if err != nil {
		return nil, err
	}
	applyOverrides(&desc, cfg)

	tr, effective := resolveTransport(desc, logger, f)

	st := stats.New()
	term := terminal.New(tr, outputMode(desc.Comm, cfg.ForceStdio), st)

	ns := ""
	if desc.SourceKind != dropfile.SourceNone {
		ns = session.Namespace(desc.BBSName)
	}

	logger.Verbose("session: source=%s comm=%s transport=%s mode=%s namespace=%q",
		desc.SourceKind, desc.Comm, effective, term.Mode(), ns)

	return session.New(desc, term, ns, st, logger), nil
}

// Describe runs descriptor resolution only (phase 2).  Exposed for
// --dry-run, which reports what a launch would do without opening
// anything.
func Describe(cfg *config.Config) (dropfile.Descriptor, error) {
	switch cfg.Source {
	case config.SourceLocal:
		return dropfile.Offline(), nil
	case config.SourceDoor32:
		return dropfile.ParseDoor32(cfg.DropFilePath)
	case config.SourceDoorSys:
		return dropfile.ParseDoorSys(cfg.DropFilePath)
	case config.SourceNodeDir:
		return dropfile.Detect(cfg.NodeDir)
	default:
		return dropfile.Parse(cfg.DropFilePath)
	}
}

// applyOverrides rewrites the requested comm kind from command-line
// overrides recorded in phase 1.  --stdio beats --serial when both are
// given: forcing standard I/O is the stronger statement about where
// the caller actually is.
func applyOverrides(desc *dropfile.Descriptor, cfg *config.Config) {
	if cfg.SerialPort != "" {
		port, err := config.ParseComPortSpec(cfg.SerialPort)
		if err == nil { // Validate already vetted the spec
			desc.Comm = dropfile.CommSerial
			desc.ComPort = port
		}
	}
	if cfg.ForceStdio {
		desc.Comm = dropfile.CommLocal
	}
	if cfg.Baud != 0 {
		desc.Baud = cfg.Baud
	}
	if desc.Baud == 0 {
		desc.Baud = config.DefaultBaud
	}
}

// resolveTransport opens the requested transport, downgrading to the
// console on failure.  It cannot fail: the console's open always
// succeeds, so bootstrap always ends with a usable terminal.
func resolveTransport(desc dropfile.Descriptor, logger *util.Logger, f factory) (transport.Transport, transport.Kind) {
	var (
		requested transport.Kind
		tr        transport.Transport
	)

	switch desc.Comm {
	case dropfile.CommSerial:
		requested = transport.KindSerial
		tr = f.serial(desc.ComPort, desc.Baud)
	case dropfile.CommSocket:
		requested = transport.KindSocket
		tr = f.socket(desc.SocketHandle)
	default:
		requested = transport.KindConsole
		tr = f.console()
	}

	err := tr.Open()
	effective := transport.Resolve(requested, err)
	if !transport.Downgraded(requested, effective) {
		return tr, effective
	}

	logger.Warn("%s transport failed (%v); falling back to local console", requested, err)
	tr.Close()

	con := f.console()
	con.Open() // cannot fail
	return con, transport.KindConsole
}

// outputMode picks the color path once, from the comm kind the session
// requested (after overrides).  Native console color calls would never
// reach a remote caller, so anything but an unforced local session
// gets literal escape codes, even a console we downgraded to.
func outputMode(requested dropfile.CommKind, forceStdio bool) terminal.Mode {
	if requested == dropfile.CommLocal && !forceStdio {
		return terminal.ModeNative
	}
	return terminal.ModeEscape
}
