package resume

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Sentinel errors returned by ParseFile.
var (
	ErrNotFound = errors.New("resume file not found")
	ErrEmpty    = errors.New("resume file is empty")
)

// sectionPatterns recognizes ATX headers whose title is a known section
// synonym. Checked in order against the trimmed line, first match wins; the
// final catch-all accepts any remaining ATX header so no header line is ever
// treated as body text.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^#+\s*(summary|profile|objective)`),
	regexp.MustCompile(`(?i)^#+\s*(experience|work\s+experience|employment)`),
	regexp.MustCompile(`(?i)^#+\s*(education|academic\s+background)`),
	regexp.MustCompile(`(?i)^#+\s*(skills|technical\s+skills|core\s+competencies)`),
	regexp.MustCompile(`(?i)^#+\s*(projects|notable\s+projects)`),
	regexp.MustCompile(`(?i)^#+\s*(certifications?|licenses?)`),
	regexp.MustCompile(`(?i)^#+\s*(awards?|achievements?|honors?)`),
	regexp.MustCompile(`(?i)^#+\s*(contact|contact\s+information)`),
	regexp.MustCompile(`(?i)^#+\s*(languages?)`),
	regexp.MustCompile(`(?i)^#+\s*(publications?)`),
	regexp.MustCompile(`(?i)^#+\s*(references?)`),
	regexp.MustCompile(`(?i)^#+\s*(.+)`),
}

// sectionAliases maps recognized header synonyms to canonical section names.
// Names without an entry pass through lowercased and trimmed.
var sectionAliases = map[string]string{
	"summary":                 SectionSummary,
	"profile":                 SectionSummary,
	"objective":               SectionSummary,
	"professional summary":    SectionSummary,
	"experience":              SectionExperience,
	"work experience":         SectionExperience,
	"employment":              SectionExperience,
	"professional experience": SectionExperience,
	"education":               SectionEducation,
	"academic background":     SectionEducation,
	"skills":                  SectionSkills,
	"technical skills":        SectionSkills,
	"core competencies":       SectionSkills,
	"projects":                SectionProjects,
	"notable projects":        SectionProjects,
	"certifications":          SectionCertifications,
	"certification":           SectionCertifications,
	"licenses":                SectionCertifications,
	"license":                 SectionCertifications,
	"awards":                  SectionAwards,
	"award":                   SectionAwards,
	"achievements":            SectionAwards,
	"achievement":             SectionAwards,
	"honors":                  SectionAwards,
	"honor":                   SectionAwards,
	"contact":                 SectionContact,
	"contact information":     SectionContact,
	"languages":               SectionLanguages,
	"language":                SectionLanguages,
	"publications":            SectionPublications,
	"publication":             SectionPublications,
	"references":              SectionReferences,
	"reference":               SectionReferences,
}

var leadingHashes = regexp.MustCompile(`^#+\s*`)

// Parser splits markdown resume text into named sections. It holds no
// mutable state; a single Parser is safe for concurrent use.
type Parser struct{}

// NewParser returns a markdown resume parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads path and parses its content into sections. It fails with
// ErrNotFound when the path does not exist and ErrEmpty when the file holds
// only whitespace.
func (p *Parser) ParseFile(path string) (*SectionMap, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume file %s: %w", path, err)
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	return p.Parse(content), nil
}

// Parse splits content into sections keyed by normalized header name.
// Content before the first header lands in an implicit "header" section; a
// document without any header becomes a single "header" section. Sections
// whose body is blank are dropped. Duplicate headers overwrite: the last
// occurrence of a normalized name wins.
func (p *Parser) Parse(content string) *SectionMap {
	sections := NewSectionMap()

	var current string
	var buf []string
	headerSeen := false

	for _, line := range strings.Split(content, "\n") {
		name, ok := extractSectionName(line)
		if ok {
			if current != "" && len(buf) > 0 {
				sections.Set(current, strings.TrimSpace(strings.Join(buf, "\n")))
			}
			current = name
			buf = nil
			headerSeen = true
			continue
		}

		if headerSeen {
			buf = append(buf, line)
			continue
		}
		// Leading content before any header, e.g. a name line at the top.
		if current == "" {
			current = SectionHeader
		}
		buf = append(buf, line)
	}

	if current != "" && len(buf) > 0 {
		sections.Set(current, strings.TrimSpace(strings.Join(buf, "\n")))
	}

	sections.dropEmpty()
	return sections
}

// extractSectionName reports whether line is a section header and returns
// its normalized name.
func extractSectionName(line string) (string, bool) {
	line = strings.TrimSpace(line)

	for _, pat := range sectionPatterns {
		m := pat.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := ""
		if len(m) > 1 {
			name = strings.TrimSpace(m[1])
		} else {
			name = strings.TrimSpace(leadingHashes.ReplaceAllString(line, ""))
		}
		return normalizeSectionName(name), true
	}

	return "", false
}

func normalizeSectionName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := sectionAliases[name]; ok {
		return canonical
	}
	return name
}

// Validate inspects parsed sections and reports advisory issues: missing
// essential sections, blank bodies, and experience or summary sections too
// short to be useful. Issues are informational, never fatal.
func (p *Parser) Validate(sections *SectionMap) []string {
	var issues []string

	for _, essential := range []string{SectionExperience, SectionEducation} {
		if !sections.Has(essential) {
			issues = append(issues, fmt.Sprintf("Missing essential section: %s", essential))
		}
	}

	var empty []string
	for _, name := range sections.Names() {
		if strings.TrimSpace(sections.Get(name)) == "" {
			empty = append(empty, name)
		}
	}
	if len(empty) > 0 {
		issues = append(issues, fmt.Sprintf("Empty sections found: %s", strings.Join(empty, ", ")))
	}

	var short []string
	for _, name := range []string{SectionExperience, SectionSummary} {
		if sections.Has(name) && len(strings.Fields(sections.Get(name))) < 3 {
			short = append(short, name)
		}
	}
	if len(short) > 0 {
		issues = append(issues, fmt.Sprintf("Sections may need more detail: %s", strings.Join(short, ", ")))
	}

	return issues
}
