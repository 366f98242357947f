package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/zte-goform/src/internal/config"
)

func CreateConfigCommand() *ConfigCommand {
	return &ConfigCommand{
		fs: flag.NewFlagSet("config", flag.ExitOnError),
	}
}

// ConfigCommand prints the effective configuration with defaults applied.
type ConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (c *ConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *ConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *ConfigCommand) Run() error {
	buf, err := c.cfg.SerializeConfig()
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}
	_, err = c.ctx.stdout().Write(buf.Bytes())
	return err
}
