package commands

import (
	"fmt"

	"git.home.luguber.info/inful/resumake/internal/config"
)

// InitCmd writes a starter configuration file.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (c *InitCmd) Run(_ *Global, cli *CLI) error {
	if err := config.Init(cli.Config, c.Force); err != nil {
		return err
	}
	fmt.Printf("Configuration written to %s\n", cli.Config)
	return nil
}
