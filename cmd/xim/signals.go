// ABOUTME: Restores the terminal when xim is killed by SIGTERM or SIGHUP.
// ABOUTME: Raw mode disables terminal-generated signals, so only external ones arrive here.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/xim/pkg/tui/terminal"
)

// restoreOnSignal tears the terminal down and exits with 128+signo when
// a termination signal arrives. The returned func stops watching.
func restoreOnSignal(t terminal.Terminal) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		defer terminal.RecoverGoroutine(t)

		select {
		case sig := <-sigCh:
			terminal.Teardown(t)
			fmt.Fprintf(os.Stderr, "xim: terminated by %v\n", sig)
			code := 1
			if s, ok := sig.(syscall.Signal); ok {
				code = 128 + int(s)
			}
			os.Exit(code)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
