// Package commands defines the resumake CLI subcommands.
package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/resumake/internal/config"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"resumake.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Improve    ImproveCmd    `cmd:"" default:"withargs" help:"Interactively analyze and improve a resume"`
	Inspect    InspectCmd    `cmd:"" help:"Parse a resume and report sections, issues and scores"`
	Format     FormatCmd     `cmd:"" help:"Reformat a markdown resume non-interactively"`
	Guidelines GuidelinesCmd `cmd:"" help:"Show formatting guidelines for resume sections"`
	Preview    PreviewCmd    `cmd:"" help:"Watch a resume file and reformat it on every change"`
	Init       InitCmd       `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the configuration named by the root flag. The file is
// only mandatory when the user pointed at a non-default path explicitly.
func loadConfig(cli *CLI) (*config.Config, error) {
	required := cli.Config != "resumake.yaml"
	return config.Load(cli.Config, required)
}
