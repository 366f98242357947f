package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/zte-goform/src/internal/commands"
	"github.com/maksimkurb/zte-goform/src/internal/log"
)

const defaultConfigPath = "/etc/zte-goform/zte-goform.conf"

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", defaultConfigPath, "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")
	flag.StringVar(&ctx.BaseURL, "url", "", "Router web UI address, e.g. http://192.168.0.1/ (overrides config)")
	flag.StringVar(&ctx.Password, "password", "", "Router password (overrides config)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ZTE router goform client\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  query <keys...>         Read raw values (keys may be comma-separated)\n")
		fmt.Fprintf(os.Stderr, "  set <key=value...>      Send a raw command (goformId=... required)\n")
		fmt.Fprintf(os.Stderr, "  datausage               Show data plan usage\n")
		fmt.Fprintf(os.Stderr, "  connection              Show WAN connection state\n")
		fmt.Fprintf(os.Stderr, "  connect                 Bring the WAN link up\n")
		fmt.Fprintf(os.Stderr, "  disconnect              Take the WAN link down\n")
		fmt.Fprintf(os.Stderr, "  auth                    Log in and show the session state\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the local REST bridge\n")
		fmt.Fprintf(os.Stderr, "  config                  Print the effective configuration\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}
	// Command output goes to stdout; keep it parseable.
	log.SetForceStdErr(true)

	// The default config file is optional; an explicit -config must exist.
	ctx.ConfigOptional = !isFlagSet("config")
	commands.Version = version

	cmds := []commands.Runner{
		commands.CreateQueryCommand(),
		commands.CreateSetCommand(),
		commands.CreateDataUsageCommand(),
		commands.CreateConnectionCommand(),
		commands.CreateConnectCommand(),
		commands.CreateDisconnectCommand(),
		commands.CreateAuthCommand(),
		commands.CreateServeCommand(),
		commands.CreateConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
