/*
icemath evaluates the numeric kernel from the command line: scalar
functions, number theory, vertex buffers, random numbers and TOML batches.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/icemath/engine/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		cancel()
	}()

	err := cli.Execute(ctx, os.Args[1:])
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
