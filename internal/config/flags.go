package config

import (
	"flag"
	"os"

	"github.com/badmarinesstudio/horizon-web/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   listen address for the local UI server
//	-u string   base URL of the remote Horizon API
//	-e string   environment name
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, so it does not interfere with flags owned by other
// components (-login, -c, ...).
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address for the local UI server")
	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the Horizon API")
	fs.StringVar(&cfg.Environment, "e", cfg.Environment, "environment name")

	return fs.Parse(args)
}
