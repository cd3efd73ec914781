package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI directives  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)
//
// BBS launch scripts often cannot edit the door's command line per
// node, but can export per-node environment; this makes both work.

import (
	"os"
	"strconv"
	"strings"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the GODOOR_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("GODOOR_DROPFILE"); v != "" {
		cfg.Source = SourceAuto
		cfg.DropFilePath = v
	}
	if v := os.Getenv("GODOOR_NODE_DIR"); v != "" {
		cfg.Source = SourceNodeDir
		cfg.NodeDir = v
	}
	if envBool("GODOOR_LOCAL") {
		cfg.Source = SourceLocal
	}
	if envBool("GODOOR_STDIO") {
		cfg.ForceStdio = true
	}
	if v := os.Getenv("GODOOR_SERIAL_PORT"); v != "" {
		cfg.SerialPort = v
	}
	if v := envInt("GODOOR_BAUD"); v > 0 {
		cfg.Baud = v
	}
	if v := envInt("GODOOR_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
