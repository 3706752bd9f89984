package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/badmarinesstudio/horizon-web/internal/app"
	"github.com/badmarinesstudio/horizon-web/internal/buildinfo"
	"github.com/badmarinesstudio/horizon-web/internal/config"
	"github.com/badmarinesstudio/horizon-web/internal/flagx"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if interactiveLogin() {
		if err := a.InteractiveLogin(ctx); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

// interactiveLogin reports whether -login was given, without disturbing
// the flags the config layers parse for themselves.
func interactiveLogin() bool {
	var login bool
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.BoolVar(&login, "login", false, "prompt for credentials before serving")
	_ = fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-login"}))
	return login
}
