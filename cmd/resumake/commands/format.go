package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/resumake/internal/resume"
)

// FormatCmd reformats a markdown resume non-interactively: parse the file
// into sections and render them back with the standard layout.
type FormatCmd struct {
	File   string `arg:"" help:"Path to the markdown resume."`
	Output string `short:"o" help:"Output path; \"-\" writes to stdout." default:"-"`
}

func (c *FormatCmd) Run(g *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	sections, err := resume.NewParser().ParseFile(c.File)
	if err != nil {
		return err
	}

	doc := resume.NewFormatter().Format(sections, cfg.Output.Template)

	if c.Output == "-" {
		fmt.Println(doc)
		return nil
	}
	if err := os.WriteFile(c.Output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write formatted resume: %w", err)
	}
	g.Logger.Info("formatted resume written", "input", c.File, "output", c.Output)
	return nil
}
