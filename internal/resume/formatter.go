package resume

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// emptyDocument is returned when there are no sections to format.
const emptyDocument = "# Resume\n\n*No content available*"

// skillsLineWidth is the greedy packing threshold for comma-separated skill
// lists; skillsSeparatorCost accounts for the " • " joiner between entries.
const (
	skillsLineWidth     = 60
	skillsSeparatorCost = 3
)

// defaultSectionOrder fixes the output order of known sections. Sections not
// listed here are appended afterwards in their map order.
var defaultSectionOrder = []string{
	SectionHeader,
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionAwards,
	SectionLanguages,
	SectionPublications,
	SectionReferences,
}

var titleCaser = cases.Title(language.English)

// Formatter renders a section map into a single markdown document. It holds
// no mutable state; a single Formatter is safe for concurrent use.
type Formatter struct{}

// NewFormatter returns a markdown resume formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders sections into a complete markdown document. The template
// identifier is reserved for future layouts; every value currently formats
// like "default". An empty map yields a fixed placeholder document. Format
// never fails.
func (f *Formatter) Format(sections *SectionMap, template string) string {
	if sections == nil || sections.Len() == 0 {
		return emptyDocument
	}

	var parts []string
	for _, name := range sectionOrder(sections) {
		block := f.formatSection(name, sections.Get(name), template)
		if block != "" {
			parts = append(parts, block)
		}
	}

	return strings.Join(parts, "\n\n")
}

// PreviewSection renders a single section the way Format would.
func (f *Formatter) PreviewSection(name, content, template string) string {
	return f.formatSection(name, content, template)
}

// sectionOrder lists the present sections in priority order, then any
// remaining sections in their original map order.
func sectionOrder(sections *SectionMap) []string {
	ordered := make([]string, 0, sections.Len())
	seen := make(map[string]bool, sections.Len())

	for _, name := range defaultSectionOrder {
		if sections.Has(name) {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	for _, name := range sections.Names() {
		if !seen[name] {
			ordered = append(ordered, name)
		}
	}

	return ordered
}

func (f *Formatter) formatSection(name, content, _ string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	switch name {
	case SectionHeader:
		return formatHeader(content)
	case SectionContact:
		return "## Contact\n\n" + strings.TrimSpace(content)
	case SectionSummary:
		return "## Professional Summary\n\n" + strings.TrimSpace(content)
	case SectionExperience:
		return formatExperience(content)
	case SectionSkills:
		return formatSkills(content)
	default:
		return formatGeneric(name, content)
	}
}

// formatHeader promotes the first non-blank line of the body to the document
// title and discards the rest.
func formatHeader(content string) string {
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if strings.TrimSpace(line) != "" {
			return "# " + strings.TrimSpace(line)
		}
	}
	return "# Resume"
}

// formatExperience bullets bare lines. Lines already marked up (bullets,
// headers, bold), role titles ending with ":" and fully upper-case lines are
// left alone; blank lines are preserved.
func formatExperience(content string) string {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	formatted := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			formatted = append(formatted, "")
			continue
		}
		if !hasMarkupPrefix(line) && !strings.HasSuffix(line, ":") && !isAllUpper(line) {
			line = "- " + line
		}
		formatted = append(formatted, line)
	}

	return "## Experience\n\n" + strings.Join(formatted, "\n")
}

// isAllUpper reports whether line contains at least one letter and no
// lower-case letters, i.e. it reads as an all-caps title.
func isAllUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func hasMarkupPrefix(line string) bool {
	for _, prefix := range []string{"-", "*", "#", "**"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// formatSkills reorganizes a single-line comma-separated skill list into
// bulleted lines packed greedily up to skillsLineWidth characters. Bodies
// with newlines or without commas pass through unchanged.
func formatSkills(content string) string {
	content = strings.TrimSpace(content)

	if !strings.Contains(content, ",") || strings.Contains(content, "\n") {
		return "## Skills\n\n" + content
	}

	var skills []string
	for _, s := range strings.Split(content, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	var lines []string
	var line []string
	length := 0
	for _, skill := range skills {
		if length+len(skill) > skillsLineWidth && len(line) > 0 {
			lines = append(lines, "- "+strings.Join(line, " • "))
			line = []string{skill}
			length = len(skill)
		} else {
			line = append(line, skill)
			length += len(skill) + skillsSeparatorCost
		}
	}
	if len(line) > 0 {
		lines = append(lines, "- "+strings.Join(line, " • "))
	}

	return "## Skills\n\n" + strings.Join(lines, "\n")
}

func formatGeneric(name, content string) string {
	display := titleCaser.String(strings.ReplaceAll(name, "_", " "))
	return "## " + display + "\n\n" + strings.TrimSpace(content)
}
