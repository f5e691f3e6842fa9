// Package resume implements the section-keyed text model at the heart of
// resumake: parsing loosely structured markdown resumes into named sections
// and formatting section maps back into a single markdown document.
package resume

import "strings"

// Canonical section names produced by the parser's normalization table.
// Unrecognized headers keep their lowercased text as the key.
const (
	SectionHeader         = "header"
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
	SectionLanguages      = "languages"
	SectionPublications   = "publications"
	SectionReferences     = "references"
)

// SectionMap is an ordered mapping from section name to body text. Iteration
// order is insertion order; setting an existing key overwrites the body
// without moving the key.
type SectionMap struct {
	names  []string
	bodies map[string]string
}

// NewSectionMap returns an empty section map.
func NewSectionMap() *SectionMap {
	return &SectionMap{bodies: make(map[string]string)}
}

// Set stores body under name, appending name to the order on first use.
func (m *SectionMap) Set(name, body string) {
	if _, ok := m.bodies[name]; !ok {
		m.names = append(m.names, name)
	}
	m.bodies[name] = body
}

// Get returns the body for name, or the empty string when absent.
func (m *SectionMap) Get(name string) string {
	return m.bodies[name]
}

// Has reports whether name is present.
func (m *SectionMap) Has(name string) bool {
	_, ok := m.bodies[name]
	return ok
}

// Delete removes name and its body. Removing an absent name is a no-op.
func (m *SectionMap) Delete(name string) {
	if _, ok := m.bodies[name]; !ok {
		return
	}
	delete(m.bodies, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
}

// Names returns the section names in insertion order. The slice is a copy.
func (m *SectionMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of sections.
func (m *SectionMap) Len() int {
	return len(m.bodies)
}

// dropEmpty removes every entry whose trimmed body is empty.
func (m *SectionMap) dropEmpty() {
	for _, name := range m.Names() {
		if strings.TrimSpace(m.bodies[name]) == "" {
			m.Delete(name)
		}
	}
}
