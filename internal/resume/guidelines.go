package resume

// sectionGuidelines holds advisory formatting guidance per section, shown by
// the terminal layer while a section is being worked on.
var sectionGuidelines = map[string][]string{
	SectionSummary: {
		"Keep to 3-4 sentences",
		"Focus on key achievements and skills",
		"Tailor to target position",
	},
	SectionExperience: {
		"Use bullet points for responsibilities",
		"Start with strong action verbs",
		"Include specific metrics and results",
		"List most recent experience first",
	},
	SectionSkills: {
		"Group by category (Technical, Management, etc.)",
		"List most relevant skills first",
		"Use consistent formatting",
	},
	SectionEducation: {
		"Include degree, institution, and year",
		"Add GPA if above 3.5",
		"Include relevant coursework for recent graduates",
	},
}

var genericGuidelines = []string{
	"Use clear, professional language",
	"Keep content relevant to target role",
	"Maintain consistent formatting",
}

// SectionGuidelines returns formatting guidance for a section, falling back
// to generic guidance for unrecognized names.
func SectionGuidelines(name string) []string {
	if g, ok := sectionGuidelines[name]; ok {
		return g
	}
	return genericGuidelines
}
