package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"git.home.luguber.info/inful/resumake/internal/analyze"
	"git.home.luguber.info/inful/resumake/internal/config"
	"git.home.luguber.info/inful/resumake/internal/profile"
	"git.home.luguber.info/inful/resumake/internal/resume"
	"git.home.luguber.info/inful/resumake/internal/terminal"
	openai "github.com/sashabaranov/go-openai"
)

// ImproveCmd runs the full interactive workflow: collect a profile, load or
// build a resume, analyze it, improve sections one by one, and export.
type ImproveCmd struct {
	File   string `arg:"" optional:"" help:"Path to an existing markdown resume."`
	Output string `short:"o" help:"Output path (overrides config)."`
	NoAI   bool   `name:"no-ai" help:"Skip the improvement API even when a key is configured."`
	Yes    bool   `short:"y" help:"Apply all proposed improvements without asking."`
}

// basicSections are created from scratch when no resume file is supplied.
var basicSections = []string{
	resume.SectionSummary,
	resume.SectionExperience,
	resume.SectionEducation,
	resume.SectionSkills,
}

func (c *ImproveCmd) Run(g *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	ui := terminal.New(os.Stdin, os.Stdout)
	ui.Welcome()

	prof := collectProfile(ui)
	r := resume.New(cfg.Output.Template)

	if err := c.loadResume(ui, r); err != nil {
		return err
	}

	parser := resume.NewParser()
	if !r.IsEmpty() {
		analyzeResume(ui, parser, r)
	} else {
		createBasicSections(ui, r)
	}

	improver := c.newImprover(cfg)
	c.improveSections(ui, r, improver, prof)

	output := c.Output
	if output == "" {
		output = cfg.Output.Path
	}
	final := r.ExportMarkdown()
	if err := os.WriteFile(output, []byte(final), 0o644); err != nil {
		return fmt.Errorf("write resume: %w", err)
	}

	ui.Println()
	ui.Rule()
	ui.Printf("Resume exported to %s\n", output)
	g.Logger.Debug("export complete", "path", output, "sections", len(r.SectionNames()))
	return nil
}

// loadResume loads the file given on the command line or prompts for one.
// A missing or unreadable file is reported and leaves the resume empty so
// the user can build one from scratch.
func (c *ImproveCmd) loadResume(ui *terminal.UI, r *resume.Resume) error {
	path := c.File
	if path == "" {
		if !ui.Confirm("Do you have an existing resume file to improve?", true) {
			ui.Println("No problem! We'll help you build one from scratch.")
			return nil
		}
		path = ui.Ask("Enter the path to your resume file (markdown)", "")
		if path == "" {
			return nil
		}
	}

	if err := r.LoadFile(path); err != nil {
		if errors.Is(err, resume.ErrNotFound) || errors.Is(err, resume.ErrEmpty) {
			ui.Printf("Could not load resume file: %v\n", err)
			ui.Println("Continuing with an empty resume.")
			return nil
		}
		return err
	}

	ui.Printf("Loaded resume from %s\n", path)
	return nil
}

func (c *ImproveCmd) newImprover(cfg *config.Config) *analyze.Improver {
	if c.NoAI || !cfg.OpenAI.Enabled() {
		return analyze.NewImprover()
	}
	return analyze.NewImprover(
		analyze.WithClient(openai.NewClient(cfg.OpenAI.APIKey)),
		analyze.WithModel(cfg.OpenAI.Model),
	)
}

// collectProfile prompts for the user's career profile, retrying until the
// answers validate.
func collectProfile(ui *terminal.UI) profile.Profile {
	ui.Println("Let's start with your basic information.")
	ui.Println()

	for {
		p := profile.Profile{
			TargetPosition:  ui.Ask("What position are you targeting?", "Software Engineer"),
			YearsExperience: ui.AskInt("How many years of relevant work experience do you have?", 2),
		}
		if ui.Confirm("Would you like to specify your target career level?", false) {
			p.TargetLevel = ui.Ask("Target level (junior, mid, senior, executive)", p.SuggestedLevel())
		}
		p.Normalize()

		if err := p.Validate(); err != nil {
			ui.Printf("Invalid profile: %v\n", err)
			continue
		}
		if !p.IsConsistent() {
			ui.Printf("Note: %s with %d years of experience looks inconsistent.\n",
				p.TargetLevel, p.YearsExperience)
			if !ui.Confirm("Keep these answers anyway?", true) {
				continue
			}
		}

		ui.Println()
		ui.Printf("Target position:     %s\n", p.TargetPosition)
		ui.Printf("Years of experience: %d\n", p.YearsExperience)
		ui.Printf("Experience tier:     %s\n", p.ExperienceTier())
		if p.TargetLevel != "" {
			ui.Printf("Target level:        %s\n", p.TargetLevel)
		} else {
			ui.Printf("Suggested level:     %s\n", p.SuggestedLevel())
		}
		ui.Println()
		return p
	}
}

// analyzeResume prints the per-section quality report and validator issues.
func analyzeResume(ui *terminal.UI, parser *resume.Parser, r *resume.Resume) {
	ui.Rule()
	ui.Println("Resume analysis")
	ui.Rule()

	sections := resume.NewSectionMap()
	for _, name := range r.SectionNames() {
		sections.Set(name, r.Section(name))
		ui.SectionReport(name, analyze.Score(r.Section(name), name), analyze.Suggest(r.Section(name), name))
	}
	ui.Println()
	ui.Issues(parser.Validate(sections))
	ui.Println()
}

// createBasicSections builds a starter resume by asking the per-section
// questions and assembling the answers.
func createBasicSections(ui *terminal.UI, r *resume.Resume) {
	ui.Println("Let's build the basic sections of your resume.")

	for _, section := range basicSections {
		ui.Println()
		ui.Printf("-- %s --\n", section)
		for _, g := range resume.SectionGuidelines(section) {
			ui.Printf("   %s\n", g)
		}

		answers := map[string]string{}
		for _, q := range sectionQuestions(section) {
			if a := ui.Ask(q, ""); a != "" {
				answers[q] = a
			}
		}
		if content := contentFromAnswers(section, answers); content != "" {
			r.UpdateSection(section, content, false)
		}
	}
}

func (c *ImproveCmd) improveSections(ui *terminal.UI, r *resume.Resume, improver *analyze.Improver, prof profile.Profile) {
	user := analyze.UserContext{
		TargetPosition:  prof.TargetPosition,
		YearsExperience: prof.YearsExperience,
	}

	for _, name := range r.SectionNames() {
		current := r.Section(name)
		if strings.TrimSpace(current) == "" {
			continue
		}

		improved := improver.Improve(context.Background(), current, name, user)
		if improved == current {
			continue
		}
		if c.Yes || ui.ConfirmChange(name, current, improved) {
			r.UpdateSection(name, improved, true)
			ui.Printf("Improved %s section\n", name)
		}
	}
}

// sectionQuestions returns the prompts used to gather content for a section
// being written from scratch.
func sectionQuestions(section string) []string {
	questions := map[string][]string{
		resume.SectionSummary: {
			"What are your key professional strengths?",
			"What makes you unique as a candidate?",
			"What are your main career achievements?",
		},
		resume.SectionExperience: {
			"What is your most recent job title and company?",
			"What were your main responsibilities?",
			"What were your key achievements in this role?",
			"Can you provide specific metrics or numbers?",
		},
		resume.SectionEducation: {
			"What is your highest degree?",
			"From which institution did you graduate?",
			"When did you graduate?",
			"What was your major/field of study?",
		},
		resume.SectionSkills: {
			"What are your technical skills?",
			"What software/tools do you use?",
			"What are your key professional competencies?",
		},
	}

	if qs, ok := questions[section]; ok {
		return qs
	}
	return []string{fmt.Sprintf("Please provide content for your %s section:", section)}
}

// contentFromAnswers assembles section content from the collected answers:
// experience answers become bullets, skills become a deduplicated
// comma-separated list, everything else is joined as prose.
func contentFromAnswers(section string, answers map[string]string) string {
	if len(answers) == 0 {
		return ""
	}

	// Map iteration order is random; keep output deterministic.
	questions := make([]string, 0, len(answers))
	for q := range answers {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	switch section {
	case resume.SectionExperience:
		var parts []string
		for _, q := range questions {
			parts = append(parts, "- "+answers[q])
		}
		return strings.Join(parts, "\n")

	case resume.SectionSkills:
		seen := map[string]bool{}
		var skills []string
		for _, q := range questions {
			for _, s := range strings.FieldsFunc(answers[q], func(r rune) bool { return r == ',' || r == '\n' }) {
				s = strings.TrimSpace(s)
				if s != "" && !seen[s] {
					seen[s] = true
					skills = append(skills, s)
				}
			}
		}
		return strings.Join(skills, ", ")

	default:
		var parts []string
		for _, q := range questions {
			parts = append(parts, answers[q])
		}
		return strings.Join(parts, " ")
	}
}
