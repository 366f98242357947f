package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/zte-goform/src/internal/domain"
	"github.com/maksimkurb/zte-goform/src/internal/models"
)

const defaultDataUsageFormat = "Used: {{used_data}} of {{total_data}} ({{used_percent}}%)\n" +
	"Remaining: {{remaining_data}} ({{remaining_percent}}%), {{remaining_days}} days\n"

func CreateDataUsageCommand() *DataUsageCommand {
	dc := &DataUsageCommand{
		fs: flag.NewFlagSet("datausage", flag.ExitOnError),
	}
	dc.fs.StringVar(&dc.format, "format", defaultDataUsageFormat,
		"Output template; placeholders: {{used_data}}, {{total_data}}, {{remaining_data}}, {{used_percent}}, "+
			"{{remaining_percent}}, {{remaining_days}}, {{usage_warning}}, {{used_bytes}}, {{total_bytes}}, "+
			"{{remaining_bytes}}, {{plan_type}}")
	dc.fs.BoolVar(&dc.asJSON, "json", false, "Print as JSON")
	return dc
}

type DataUsageCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	format string
	asJSON bool
}

func (c *DataUsageCommand) Name() string {
	return c.fs.Name()
}

func (c *DataUsageCommand) Init(args []string, ctx *AppContext) error {
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

func (c *DataUsageCommand) Run() error {
	usage, err := models.FetchDataUsage(c.deps.DeviceClient())
	if err != nil {
		return err
	}

	out := c.ctx.stdout()
	if c.asJSON {
		return writeJSON(out, usage)
	}
	text, err := renderTemplate(unescapeFormat(c.format), usage.TemplateValues())
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}
