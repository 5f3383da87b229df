// Command jwtkit is a thin command-line caller for the token engine:
// it decodes, signs, and verifies compact JWTs and lists the supported
// signing algorithms. Results go to stdout; diagnostics go to stderr.
package main

import (
	"log/slog"
	"os"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
