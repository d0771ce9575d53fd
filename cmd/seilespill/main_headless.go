//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.String("config", "", "settings file")
	flag.String("assets", "", "asset directory")
	flag.Parse()

	if showVersion {
		fmt.Printf("Seilespill %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "Seilespill needs the windowed build (cgo/raylib enabled).")
	os.Exit(1)
}
