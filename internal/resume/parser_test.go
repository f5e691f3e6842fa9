package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_StandardSections(t *testing.T) {
	content := `John Smith
john@example.com

## Summary

Senior engineer with a decade of distributed systems work.

## Experience

Led the platform team at Acme.

## Education

BSc Computer Science, 2012.
`
	sections := NewParser().Parse(content)

	require.Equal(t, []string{"header", "summary", "experience", "education"}, sections.Names())
	assert.Equal(t, "Senior engineer with a decade of distributed systems work.", sections.Get("summary"))
	assert.Equal(t, "Led the platform team at Acme.", sections.Get("experience"))
}

func TestParse_HeaderSynonymsNormalize(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"## Work Experience", "experience"},
		{"## Employment", "experience"},
		{"## Experience", "experience"},
		{"## Profile", "summary"},
		{"## Objective", "summary"},
		{"## Academic Background", "education"},
		{"## Technical Skills", "skills"},
		{"## Core Competencies", "skills"},
		{"## Notable Projects", "projects"},
		{"## Licenses", "certifications"},
		{"## Honors", "awards"},
		{"## Contact Information", "contact"},
	}

	for _, tc := range cases {
		sections := NewParser().Parse(tc.header + "\n\nsome body text\n")
		require.True(t, sections.Has(tc.want), "header %q should normalize to %q", tc.header, tc.want)
		assert.Equal(t, "some body text", sections.Get(tc.want))
	}
}

func TestParse_UnrecognizedHeaderPassesThrough(t *testing.T) {
	sections := NewParser().Parse("## Volunteer Work\n\nFood bank coordinator.\n")

	require.Equal(t, []string{"volunteer work"}, sections.Names())
	assert.Equal(t, "Food bank coordinator.", sections.Get("volunteer work"))
}

func TestParse_LeadingContentBecomesHeaderSection(t *testing.T) {
	content := "Jane Doe\njane@example.com\n\n## Experience\n\nBuilt things.\n"
	sections := NewParser().Parse(content)

	require.Equal(t, []string{"header", "experience"}, sections.Names())
	assert.Equal(t, "Jane Doe\njane@example.com", sections.Get("header"))
}

func TestParse_NoHeadersAtAll(t *testing.T) {
	sections := NewParser().Parse("Just a plain paragraph.\nNothing else.\n")

	require.Equal(t, []string{"header"}, sections.Names())
	assert.Equal(t, "Just a plain paragraph.\nNothing else.", sections.Get("header"))
}

func TestParse_ConsecutiveHeadersDropEmptyEarlierSection(t *testing.T) {
	content := "## Summary\n## Experience\n\nShipped the billing rewrite.\n"
	sections := NewParser().Parse(content)

	assert.False(t, sections.Has("summary"))
	require.True(t, sections.Has("experience"))
	assert.Equal(t, "Shipped the billing rewrite.", sections.Get("experience"))
}

func TestParse_DuplicateHeaderLastWins(t *testing.T) {
	content := "## Experience\n\nfirst body\n\n## Experience\n\nsecond body\n"
	sections := NewParser().Parse(content)

	require.Equal(t, 1, sections.Len())
	assert.Equal(t, "second body", sections.Get("experience"))
}

func TestParse_CaseInsensitiveHeaders(t *testing.T) {
	sections := NewParser().Parse("## EDUCATION\n\nMIT\n")
	assert.Equal(t, "MIT", sections.Get("education"))
}

func TestParse_DeepHeaderLevels(t *testing.T) {
	sections := NewParser().Parse("### Skills\n\nGo, Rust\n")
	assert.True(t, sections.Has("skills"))
}

func TestParseFile_MissingPath(t *testing.T) {
	_, err := NewParser().ParseFile(filepath.Join(t.TempDir(), "nope.md"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestParseFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("   \n\t\n"), 0o644))

	_, err := NewParser().ParseFile(path)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestParseFile_RoundTripsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("## Skills\n\nGo, SQL\n"), 0o644))

	sections, err := NewParser().ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Go, SQL", sections.Get("skills"))
}

func TestValidate_ReportsMissingEssentialSections(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("skills", "Go")

	issues := NewParser().Validate(sections)
	assert.Contains(t, issues, "Missing essential section: experience")
	assert.Contains(t, issues, "Missing essential section: education")
}

func TestValidate_FlagsShortSections(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("experience", "one two")
	sections.Set("education", "BSc Computer Science, 2012")
	sections.Set("summary", "word")

	issues := NewParser().Validate(sections)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "may need more detail")
	assert.Contains(t, issues[0], "experience")
	assert.Contains(t, issues[0], "summary")
}

func TestValidate_CleanResume(t *testing.T) {
	sections := NewSectionMap()
	sections.Set("experience", "Led the platform team for three years")
	sections.Set("education", "BSc Computer Science")

	assert.Empty(t, NewParser().Validate(sections))
}
