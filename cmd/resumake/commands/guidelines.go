package commands

import (
	"fmt"

	"git.home.luguber.info/inful/resumake/internal/resume"
)

// GuidelinesCmd prints formatting guidance for one section, or for all
// sections with dedicated guidance when no name is given.
type GuidelinesCmd struct {
	Section string `arg:"" optional:"" help:"Section name (summary, experience, skills, education, ...)."`
}

func (c *GuidelinesCmd) Run(_ *Global, _ *CLI) error {
	if c.Section != "" {
		printGuidelines(c.Section)
		return nil
	}

	for _, name := range []string{
		resume.SectionSummary,
		resume.SectionExperience,
		resume.SectionSkills,
		resume.SectionEducation,
	} {
		printGuidelines(name)
		fmt.Println()
	}
	return nil
}

func printGuidelines(section string) {
	fmt.Printf("%s:\n", section)
	for _, g := range resume.SectionGuidelines(section) {
		fmt.Printf("  - %s\n", g)
	}
}
