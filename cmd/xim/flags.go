// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --version, --verbose and --config

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package main

import "flag"

type cliArgs struct {
	version    bool
	verbose    bool
	configPath string
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.BoolVar(&args.verbose, "verbose", false, "Log at debug level")
	flag.StringVar(&args.configPath, "config", "", "Config file to use instead of ~/.xim/config.yaml")

	flag.Parse()
	return args
}
