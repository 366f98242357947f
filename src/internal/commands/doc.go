// Package commands implements CLI command handlers for zte-goform.
//
// Each command implements the Runner interface: Init parses its flags and
// builds the device client from configuration, Run performs one operation
// and prints the result.
//
// # Available Commands
//
//   - query: read raw keys
//   - set: send a raw command (key=value pairs)
//   - datausage: print plan usage
//   - connection: print WAN state
//   - connect, disconnect: switch the WAN link
//   - auth: log in and report the session state
//   - serve: run the local REST bridge
//   - config: print the effective configuration
//
// # Example Usage
//
//	cmd := commands.CreateQueryCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/etc/zte-goform/zte-goform.conf",
//	    Verbose:    true,
//	}
//	if err := cmd.Init([]string{"ppp_status", "lte_rsrp"}, ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatal(err)
//	}
package commands
