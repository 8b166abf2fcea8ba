// Package commands implements CLI command handlers for ip-ranges.
//
// Each command implements the Runner interface: Init parses the command's own
// flags and loads the validated configuration, Run does the work, Name
// returns the name used for routing in main.
//
// # Available Commands
//
//   - generate: Resolve servers, fetch provider ranges and write both lists
//   - check: Report which written network covers an address or hostname
//   - services: List service/region pairs published by the provider
//   - print-config: Print the effective configuration as TOML
//
// # Example Usage
//
//	cmd := commands.CreateGenerateCommand()
//	ctx := &commands.AppContext{ConfigPath: "ip-ranges.toml"}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
