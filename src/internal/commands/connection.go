package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/zte-goform/src/internal/domain"
	"github.com/maksimkurb/zte-goform/src/internal/goform"
	"github.com/maksimkurb/zte-goform/src/internal/log"
	"github.com/maksimkurb/zte-goform/src/internal/models"
)

const defaultConnectionFormat = "State: {{state}} (connected: {{connected}})\n" +
	"Signal: LTE {{signal_lte}} dBm, 5G {{signal_5g}} dBm\n" +
	"WAN: {{wan_ipv4}} {{wan_ipv6}}\n"

func CreateConnectionCommand() *ConnectionCommand {
	cc := &ConnectionCommand{
		fs: flag.NewFlagSet("connection", flag.ExitOnError),
	}
	cc.fs.StringVar(&cc.format, "format", defaultConnectionFormat,
		"Output template; placeholders: {{state}}, {{connected}}, {{signal_lte}}, {{signal_5g}}, {{wan_ipv4}}, {{wan_ipv6}}")
	cc.fs.BoolVar(&cc.asJSON, "json", false, "Print as JSON")
	return cc
}

type ConnectionCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	format string
	asJSON bool
}

func (c *ConnectionCommand) Name() string {
	return c.fs.Name()
}

func (c *ConnectionCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	deps, _, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	c.deps = deps
	return nil
}

func (c *ConnectionCommand) Run() error {
	conn, err := models.FetchConnection(c.deps.DeviceClient())
	if err != nil {
		return err
	}

	out := c.ctx.stdout()
	if c.asJSON {
		return writeJSON(out, conn.Info())
	}
	text, err := renderTemplate(unescapeFormat(c.format), conn.TemplateValues())
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}

// CreateConnectCommand brings the WAN link up.
func CreateConnectCommand() *SwitchNetworkCommand {
	return &SwitchNetworkCommand{
		fs:     flag.NewFlagSet("connect", flag.ExitOnError),
		action: models.Connect,
	}
}

// CreateDisconnectCommand takes the WAN link down.
func CreateDisconnectCommand() *SwitchNetworkCommand {
	return &SwitchNetworkCommand{
		fs:     flag.NewFlagSet("disconnect", flag.ExitOnError),
		action: models.Disconnect,
	}
}

type SwitchNetworkCommand struct {
	fs     *flag.FlagSet
	ctx    *AppContext
	deps   *domain.AppDependencies
	action func(goform.Session) (bool, error)
}

func (c *SwitchNetworkCommand) Name() string {
	return c.fs.Name()
}

func (c *SwitchNetworkCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	deps, _, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	c.deps = deps
	return nil
}

func (c *SwitchNetworkCommand) Run() error {
	ok, err := c.action(c.deps.DeviceClient())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("device rejected %s", c.Name())
	}

	log.Infof("%s requested", c.Name())
	fmt.Fprintln(c.ctx.stdout(), "success")
	return nil
}
