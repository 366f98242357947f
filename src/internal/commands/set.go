package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/zte-goform/src/internal/domain"
	"github.com/maksimkurb/zte-goform/src/internal/goform"
	"github.com/maksimkurb/zte-goform/src/internal/log"
)

func CreateSetCommand() *SetCommand {
	return &SetCommand{
		fs: flag.NewFlagSet("set", flag.ExitOnError),
	}
}

// SetCommand sends a raw command: set goformId=SET_X key=value ...
type SetCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	fields goform.Fields
}

func (c *SetCommand) Name() string {
	return c.fs.Name()
}

func (c *SetCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	fields, err := parseFields(c.fs.Args())
	if err != nil {
		return err
	}
	c.fields = fields

	deps, _, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	c.deps = deps
	return nil
}

func parseFields(args []string) (goform.Fields, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one key=value pair is required")
	}

	fields := make(goform.Fields, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", arg)
		}
		fields[key] = value
	}
	return fields, nil
}

func (c *SetCommand) Run() error {
	ok, err := c.deps.DeviceClient().Command(c.fields)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("device rejected %s", c.fields[goform.FieldGoformID])
	}

	log.Infof("%s applied", c.fields[goform.FieldGoformID])
	fmt.Fprintln(c.ctx.stdout(), "success")
	return nil
}
