package commands

import (
	"os"

	"git.home.luguber.info/inful/resumake/internal/analyze"
	"git.home.luguber.info/inful/resumake/internal/resume"
	"git.home.luguber.info/inful/resumake/internal/terminal"
)

// InspectCmd parses a resume file and reports its sections, advisory issues,
// quality scores and the outline of the formatted output, without writing
// anything.
type InspectCmd struct {
	File    string `arg:"" help:"Path to the markdown resume."`
	Outline bool   `help:"Also print the heading outline of the formatted document."`
}

func (c *InspectCmd) Run(g *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	parser := resume.NewParser()
	sections, err := parser.ParseFile(c.File)
	if err != nil {
		return err
	}

	ui := terminal.New(os.Stdin, os.Stdout)
	ui.Printf("Sections in %s\n", c.File)
	ui.Rule()
	for _, name := range sections.Names() {
		body := sections.Get(name)
		ui.SectionReport(name, analyze.Score(body, name), analyze.Suggest(body, name))
	}

	ui.Println()
	ui.Issues(parser.Validate(sections))

	if c.Outline {
		doc := resume.NewFormatter().Format(sections, cfg.Output.Template)
		ui.Println()
		ui.Println("Formatted outline:")
		for _, h := range resume.Outline(doc) {
			for i := 1; i < h.Level; i++ {
				ui.Printf("  ")
			}
			ui.Printf("%s\n", h.Title)
		}
	}

	g.Logger.Debug("inspect complete", "file", c.File, "sections", sections.Len())
	return nil
}
