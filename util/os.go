package util

import (
	"os"
	"os/signal"
	"syscall"
)

// TrapSignalTerm calls cb once for the first SIGINT or SIGTERM received.
func TrapSignalTerm(cb func(os.Signal)) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		signal.Stop(c)
		cb(sig)
	}()
}
