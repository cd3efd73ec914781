// godoor - runs a terminal game as a BBS door over whatever channel
// the BBS hands down: an inherited socket, a FOSSIL-style serial port,
// or plain standard I/O.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"godoor/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "godoor: %v\n", err)
		os.Exit(1)
	}
}
