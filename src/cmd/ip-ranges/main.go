package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/ip-ranges/src/internal/commands"
	"github.com/maksimkurb/ip-ranges/src/internal/config"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to configuration file (built-in defaults when empty)")
	flag.StringVar(&ctx.EnvFile, "env", ".env", "Path to .env file with environment overrides")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "IPv4 allowlist generator\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  generate                Resolve servers, fetch provider ranges and write both lists\n")
		fmt.Fprintf(os.Stderr, "  check <ip|host>...      Show which written network covers each address\n")
		fmt.Fprintf(os.Stderr, "  services                List service/region pairs published by the provider\n")
		fmt.Fprintf(os.Stderr, "  print-config            Print the effective configuration\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %s   Output directory (overrides [output] dir)\n", config.OutputPathEnv)
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	if err := config.LoadDotEnv(ctx.EnvFile); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	cmds := []commands.Runner{
		commands.CreateGenerateCommand(),
		commands.CreateCheckCommand(),
		commands.CreateServicesCommand(),
		commands.CreatePrintConfigCommand(),
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
