package resume

// Resume tracks the raw parsed content of a resume alongside any revised
// content produced during an improvement run. Revised bodies shadow raw ones
// at export time without destroying the original text.
type Resume struct {
	raw      *SectionMap
	revised  *SectionMap
	template string
}

// New returns an empty resume using the given template identifier. An empty
// template means "default".
func New(template string) *Resume {
	if template == "" {
		template = "default"
	}
	return &Resume{
		raw:      NewSectionMap(),
		revised:  NewSectionMap(),
		template: template,
	}
}

// LoadFile parses the markdown file at path and replaces the raw content.
func (r *Resume) LoadFile(path string) error {
	sections, err := NewParser().ParseFile(path)
	if err != nil {
		return err
	}
	r.raw = sections
	return nil
}

// Section returns the raw body for name, empty when absent.
func (r *Resume) Section(name string) string {
	return r.raw.Get(name)
}

// UpdateSection stores content under name, in the revised overlay when
// revised is true and in the raw content otherwise.
func (r *Resume) UpdateSection(name, content string, revised bool) {
	if revised {
		r.revised.Set(name, content)
		return
	}
	r.raw.Set(name, content)
}

// SectionNames lists the raw section names in parse order.
func (r *Resume) SectionNames() []string {
	return r.raw.Names()
}

// HasRevised reports whether name has revised content.
func (r *Resume) HasRevised(name string) bool {
	return r.revised.Has(name)
}

// IsEmpty reports whether the resume has no raw content.
func (r *Resume) IsEmpty() bool {
	return r.raw.Len() == 0
}

// Template returns the template identifier used for export.
func (r *Resume) Template() string {
	return r.template
}

// ExportMarkdown renders the final document, preferring revised content over
// raw content section by section.
func (r *Resume) ExportMarkdown() string {
	final := NewSectionMap()
	for _, name := range r.raw.Names() {
		if r.revised.Has(name) {
			final.Set(name, r.revised.Get(name))
		} else {
			final.Set(name, r.raw.Get(name))
		}
	}
	return NewFormatter().Format(final, r.template)
}
