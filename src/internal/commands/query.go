package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/zte-goform/src/internal/domain"
)

func CreateQueryCommand() *QueryCommand {
	qc := &QueryCommand{
		fs: flag.NewFlagSet("query", flag.ExitOnError),
	}
	qc.fs.BoolVar(&qc.asJSON, "json", false, "Print the response as JSON")
	return qc
}

// QueryCommand reads raw keys: query ppp_status lte_rsrp or query ppp_status,lte_rsrp.
type QueryCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	asJSON bool
	keys   []string
}

func (c *QueryCommand) Name() string {
	return c.fs.Name()
}

func (c *QueryCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	c.keys = nil
	for _, arg := range c.fs.Args() {
		c.keys = append(c.keys, strings.Split(arg, ",")...)
	}
	if len(c.keys) == 0 {
		return fmt.Errorf("at least one key is required")
	}

	deps, _, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	c.deps = deps
	return nil
}

func (c *QueryCommand) Run() error {
	values, err := c.deps.DeviceClient().Query(c.keys)
	if err != nil {
		return err
	}

	out := c.ctx.stdout()
	if c.asJSON {
		return writeJSON(out, values)
	}
	for _, key := range c.keys {
		fmt.Fprintf(out, "%s=%s\n", key, values.String(key))
	}
	return nil
}
