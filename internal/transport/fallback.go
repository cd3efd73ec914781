package transport

// fallback.go - the downgrade decision table.
//
// The fallback chain is deliberately a pure function rather than
// exception-driven control flow: (requested kind, open result) in,
// effective kind out.  That keeps it unit-testable with no real
// sockets or serial hardware on the machine.

// Resolve returns the transport kind a session should actually run
// over, given what the drop file (or an override) requested and how
// opening it went.  Every failure downgrades to the console: a door
// must always end bootstrap with a usable terminal.
//
//	serial  + failure → console
//	socket  + failure → console
//	console           → console (its open cannot fail)
func Resolve(requested Kind, openErr error) Kind {
	if openErr == nil {
		return requested
	}
	return KindConsole
}

// Downgraded reports whether Resolve moved the session off the
// requested transport, so the bootstrap can log it for the sysop.
func Downgraded(requested, effective Kind) bool {
	return requested != effective
}
