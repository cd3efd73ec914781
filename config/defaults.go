package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultBaud is the serial line rate used when neither the drop
	// file nor the command line names one.
	DefaultBaud = 38400

	// Door32FileName is the modern drop-file name searched for first
	// during node-directory scans (matched case-insensitively).
	Door32FileName = "door32.sys"

	// DoorSysFileName is the legacy drop-file name searched for second.
	DoorSysFileName = "door.sys"

	// MaxDoorSysLines is the positional field count of the legacy
	// GAP-style DOOR.SYS layout.
	MaxDoorSysLines = 52

	// MaxNamespaceLen caps the sanitized BBS-name token used to pick a
	// save subdirectory.
	MaxNamespaceLen = 32

	// DefaultVerbosity shows warnings (transport downgrades) without
	// flooding the sysop's log.
	DefaultVerbosity = 1
)
