// Package cmd wires up the CLI directives and dispatches to the
// session bootstrap.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"godoor/config"
	"godoor/internal/core"
	"godoor/internal/session"
	"godoor/internal/terminal"
	"godoor/internal/transport"
	"godoor/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X godoor/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// sourceFlags maps each drop-file source directive to its Source kind.
// The group is mutually exclusive; the first one that appears on the
// command line wins and the rest are ignored, never merged.
var sourceFlags = map[string]config.Source{
	"dropfile": config.SourceAuto,
	"door32":   config.SourceDoor32,
	"doorsys":  config.SourceDoorSys,
	"node-dir": config.SourceNodeDir,
	"local":    config.SourceLocal,
}

// Execute parses args, bootstraps a session, and runs the door.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{}
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("godoor", flag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true // BBS launch scripts append junk

	// ── drop-file source (mutually exclusive, first wins) ────────
	var dropPath, door32Path, doorSysPath, nodeDir string
	var localTest bool
	fs.StringVar(&dropPath, "dropfile", "", "Drop file path, dialect auto-detected")
	fs.StringVar(&door32Path, "door32", "", "Drop file path, parsed as DOOR32.SYS")
	fs.StringVar(&doorSysPath, "doorsys", "", "Drop file path, parsed as DOOR.SYS")
	fs.StringVar(&nodeDir, "node-dir", "", "Node directory to scan for a drop file")
	fs.BoolVar(&localTest, "local", false, "Local test session, no BBS")

	// ── transport overrides (recorded now, applied in phase 3) ───
	// Bound to locals and merged after parsing: registering a flag
	// writes its default into the target, which would clobber values
	// the environment overlay already loaded.
	var forceStdio bool
	var serialPort string
	var baud int
	fs.BoolVar(&forceStdio, "stdio", false, "Force standard I/O with escape-code output")
	fs.StringVar(&serialPort, "serial", "", "Force a serial port (e.g. COM3 or /dev/ttyS0)")
	fs.IntVar(&baud, "baud", 0, "Serial line rate override")

	// ── output ───────────────────────────────────────────────────
	var verbose int
	var quiet bool
	fs.CountVarP(&verbose, "verbose", "v", "Increase diagnostics (repeatable)")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Errors only")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Resolve the session and report, open nothing")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("godoor %s\n", version)
		return nil
	}

	// ── merge flag overrides over the environment overlay ────────
	if forceStdio {
		cfg.ForceStdio = true
	}
	if serialPort != "" {
		cfg.SerialPort = serialPort
	}
	if baud != 0 {
		cfg.Baud = baud
	}
	if verbose > 0 {
		cfg.Verbose = verbose
	}

	// ── source resolution (first recognized wins) ────────────────
	if src, ok := firstSource(args); ok {
		cfg.Source = src
		switch src {
		case config.SourceAuto:
			cfg.DropFilePath = dropPath
		case config.SourceDoor32:
			cfg.DropFilePath = door32Path
		case config.SourceDoorSys:
			cfg.DropFilePath = doorSysPath
		case config.SourceNodeDir:
			cfg.NodeDir = nodeDir
		}
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	verbosity := config.DefaultVerbosity + cfg.Verbose
	if quiet {
		verbosity = 0
	}
	logger := util.NewLogger(verbosity)

	if cfg.DryRun {
		return dryRun(cfg, logger)
	}

	// ── bootstrap and run ────────────────────────────────────────
	sess, err := core.Bootstrap(cfg, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	if sess.Term.Mode() == terminal.ModeNative && !transport.StdoutIsTerminal() {
		logger.Verbose("stdout is not a terminal; native colors will be suppressed")
	}

	return runDoor(ctx, sess)
}

// ── helpers ──────────────────────────────────────────────────────────

// firstSource scans the raw argv left to right for the first
// recognized source directive.  pflag already bound the values; this
// only decides which binding counts.
func firstSource(args []string) (config.Source, bool) {
	for _, arg := range args {
		if len(arg) < 3 || arg[0] != '-' || arg[1] != '-' {
			continue
		}
		name := arg[2:]
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		if src, ok := sourceFlags[name]; ok {
			return src, true
		}
	}
	return config.SourceUnset, false
}

// dryRun reports how the session would resolve without opening any
// transport.  Lets sysops verify a door entry from a shell.
func dryRun(cfg *config.Config, logger *util.Logger) error {
	desc, err := core.Describe(cfg)
	if err != nil {
		return err
	}
	logger.Info("source: %s (%s)", desc.SourceKind, desc.SourcePath)
	logger.Info("caller: %q (record %d)", desc.DisplayName(), desc.UserRecord)
	logger.Info("comm: %s", desc.Comm)
	if ns := session.Namespace(desc.BBSName); ns != "" {
		logger.Info("save namespace: %s", ns)
	}
	return nil
}

// runDoor is a minimal door loop proving the whole path end to end;
// real games replace this with their own screens.
func runDoor(ctx context.Context, sess *session.Session) error {
	term := sess.Term

	if err := term.ClearScreen(); err != nil {
		return err
	}
	term.Println(terminal.ColorBrightCyan, "godoor "+version)

	name := sess.Descriptor.DisplayName()
	if name == "" {
		name = "stranger"
	}
	term.Printf(terminal.ColorGreen, "Welcome, %s!\n", name)
	if sess.Descriptor.MinutesLeft > 0 {
		term.Printf(terminal.ColorYellow, "You have %d minutes this call.\n",
			sess.Descriptor.MinutesLeft)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	line, err := term.Prompt(terminal.ColorBrightWhite, "\nSay something: ")
	if err != nil {
		// Caller disconnects unblock the read with an error; that is
		// a normal way for a door session to end.
		sess.Logger.Verbose("input ended: %v", err)
		return nil
	}
	term.Printf(terminal.ColorMagenta, "%q, noted.\n", line)
	term.Println(terminal.ColorBrightGreen, "Returning you to the BBS...")
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `godoor – BBS door session kit v%s

Parses a drop file, picks a transport (inherited socket, serial port,
or local console), and presents one terminal to the game.

Usage:
  godoor --dropfile PATH [options]       Auto-detect the dialect
  godoor --door32 PATH                   Force DOOR32.SYS parsing
  godoor --doorsys PATH                  Force DOOR.SYS parsing
  godoor --node-dir DIR                  Scan a node directory
  godoor --local                         Offline test session

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  godoor --node-dir /bbs/node1           Typical BBS launch
  godoor --door32 door32.sys --stdio     Socketless stdio bridge
  godoor --local --serial COM3           Drive a real modem for testing
  godoor --dropfile door.sys --dry-run   Verify a door entry
`)
}
