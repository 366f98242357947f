package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/zte-goform/src/internal/domain"
)

func CreateAuthCommand() *AuthCommand {
	ac := &AuthCommand{
		fs: flag.NewFlagSet("auth", flag.ExitOnError),
	}
	ac.fs.BoolVar(&ac.checkOnly, "check", false, "Only report the session state, do not log in")
	return ac
}

// AuthCommand logs in (unless -check) and prints whether the session is authenticated.
type AuthCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	checkOnly bool
}

func (c *AuthCommand) Name() string {
	return c.fs.Name()
}

func (c *AuthCommand) Init(args []string, ctx *AppContext) error {
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

func (c *AuthCommand) Run() error {
	client := c.deps.DeviceClient()
	if !c.checkOnly {
		if err := client.Login(); err != nil {
			return err
		}
	}

	if client.IsAuthenticated() {
		fmt.Fprintln(c.ctx.stdout(), "authenticated")
	} else {
		fmt.Fprintln(c.ctx.stdout(), "not authenticated")
	}
	return nil
}
