package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_EmptyMapReturnsPlaceholder(t *testing.T) {
	assert.Equal(t, "# Resume\n\n*No content available*", NewFormatter().Format(NewSectionMap(), "default"))
	assert.Equal(t, "# Resume\n\n*No content available*", NewFormatter().Format(nil, "default"))
}

func TestFormat_SectionOrderFollowsPriorityList(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("skills", "Go")
	sections.Set("summary", "Engineer with focus on infra.")
	sections.Set("experience", "- Built things")

	doc := NewFormatter().Format(sections, "default")

	summaryAt := strings.Index(doc, "## Professional Summary")
	experienceAt := strings.Index(doc, "## Experience")
	skillsAt := strings.Index(doc, "## Skills")
	require.NotEqual(t, -1, summaryAt)
	require.NotEqual(t, -1, experienceAt)
	require.NotEqual(t, -1, skillsAt)
	assert.Less(t, summaryAt, experienceAt)
	assert.Less(t, experienceAt, skillsAt)
}

func TestFormat_UnknownSectionsAppendedInMapOrder(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("volunteer work", "Food bank.")
	sections.Set("summary", "Engineer.")
	sections.Set("hobbies", "Chess.")

	doc := NewFormatter().Format(sections, "default")

	summaryAt := strings.Index(doc, "## Professional Summary")
	volunteerAt := strings.Index(doc, "## Volunteer Work")
	hobbiesAt := strings.Index(doc, "## Hobbies")
	assert.Less(t, summaryAt, volunteerAt)
	assert.Less(t, volunteerAt, hobbiesAt)
}

func TestFormat_HeaderSectionBecomesTitle(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("header", "\nJane Doe\njane@example.com")

	doc := NewFormatter().Format(sections, "default")
	assert.Equal(t, "# Jane Doe", doc)
}

func TestFormat_ExperienceBulletsBareLines(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("experience", "Led team of 5\nBuilt system")

	doc := NewFormatter().Format(sections, "default")
	assert.Equal(t, "## Experience\n\n- Led team of 5\n- Built system", doc)
}

func TestFormat_ExperienceLeavesMarkedUpLinesAlone(t *testing.T) {
	body := strings.Join([]string{
		"**Acme Corp**",
		"Responsibilities:",
		"- Already a bullet",
		"ACME PLATFORM TEAM",
		"",
		"Shipped the billing rewrite",
	}, "\n")

	sections := NewSectionMap()
	sections.Set("experience", body)

	doc := NewFormatter().Format(sections, "default")
	lines := strings.Split(doc, "\n")

	assert.Contains(t, lines, "**Acme Corp**")
	assert.Contains(t, lines, "Responsibilities:")
	assert.Contains(t, lines, "- Already a bullet")
	assert.Contains(t, lines, "ACME PLATFORM TEAM")
	assert.Contains(t, lines, "- Shipped the billing rewrite")
}

func TestFormat_SkillsGreedyPacking(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("skills", "Python, Go, Rust, Kubernetes, Terraform, Docker, AWS, GCP")

	doc := NewFormatter().Format(sections, "default")
	want := "## Skills\n\n- Python • Go • Rust • Kubernetes • Terraform • Docker • AWS\n- GCP"
	assert.Equal(t, want, doc)
}

func TestFormat_SkillsWithNewlinesPassThrough(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("skills", "Languages: Go, Rust\nTools: Docker")

	doc := NewFormatter().Format(sections, "default")
	assert.Equal(t, "## Skills\n\nLanguages: Go, Rust\nTools: Docker", doc)
}

func TestFormat_SkillsWithoutCommasPassThrough(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("skills", "Go")

	doc := NewFormatter().Format(sections, "default")
	assert.Equal(t, "## Skills\n\nGo", doc)
}

func TestFormat_GenericSectionTitleCased(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("side_projects", "A static site generator.")

	doc := NewFormatter().Format(sections, "default")
	assert.Equal(t, "## Side Projects\n\nA static site generator.", doc)
}

func TestFormat_BlankSectionsAreSkipped(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("summary", "Engineer.")
	sections.Set("skills", "   ")

	doc := NewFormatter().Format(sections, "default")
	assert.Equal(t, "## Professional Summary\n\nEngineer.", doc)
}

func TestFormat_UnknownTemplateBehavesLikeDefault(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("summary", "Engineer.")

	assert.Equal(t,
		NewFormatter().Format(sections, "default"),
		NewFormatter().Format(sections, "modern"))
}

func TestFormat_RoundTripIsStable(t *testing.T) {
	content := strings.Join([]string{
		"## Summary",
		"",
		"Senior engineer focused on infrastructure.",
		"",
		"## Experience",
		"",
		"Led team of 5",
		"Built deployment pipeline",
		"",
		"## Skills",
		"",
		"Go, Rust, Kubernetes",
	}, "\n")

	parser := NewParser()
	formatter := NewFormatter()

	once := formatter.Format(parser.Parse(content), "default")
	twice := formatter.Format(parser.Parse(once), "default")
	assert.Equal(t, once, twice)
}

func TestPreviewSection_MatchesFormatRules(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "## Contact\n\njane@example.com", f.PreviewSection("contact", "jane@example.com", "default"))
	assert.Equal(t, "", f.PreviewSection("contact", "   ", "default"))
}

func TestSectionGuidelines(t *testing.T) {
	assert.Contains(t, SectionGuidelines("experience"), "Start with strong action verbs")

	generic := SectionGuidelines("volunteer work")
	require.Len(t, generic, 3)
	assert.Contains(t, generic, "Use clear, professional language")
}
