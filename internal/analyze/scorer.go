// Package analyze assesses resume section quality and produces improved
// content, either through rule-based heuristics or an OpenAI-compatible
// chat-completion call.
package analyze

import (
	"fmt"
	"regexp"
	"strings"
)

// actionVerbs are the verbs counted toward the experience-section score.
var actionVerbs = []string{
	"achieved", "managed", "led", "developed", "implemented",
	"created", "improved", "increased", "reduced", "optimized",
}

// informalWords lower the professional-language score when present.
var informalWords = []string{"stuff", "things", "lots", "really", "very", "awesome"}

// quantifiablePattern matches metrics: percentages, dollar amounts, counts
// with suffixes, and year spans.
var quantifiablePattern = regexp.MustCompile(`(?i)\d+%|\d+\+|\$\d+|\d+[kmb]|\d+ years?`)

// Score rates section content from 0.0 to 1.0 using additive heuristics:
// word-count band, action-verb density (experience only), presence of
// quantifiable results, and absence of informal language.
func Score(content, section string) float64 {
	if strings.TrimSpace(content) == "" {
		return 0.0
	}

	score := 0.0
	lower := strings.ToLower(content)
	words := len(strings.Fields(content))

	if section == "experience" || section == "summary" {
		if words >= 20 && words <= 200 {
			score += 0.3
		}
	} else if words >= 5 && words <= 100 {
		score += 0.3
	}

	if section == "experience" {
		found := 0
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				found++
			}
		}
		score += min(float64(found)/3, 0.3)
	}

	if quantifiablePattern.MatchString(content) {
		score += 0.2
	}

	informal := 0
	for _, word := range informalWords {
		if strings.Contains(lower, word) {
			informal++
		}
	}
	if informal == 0 {
		score += 0.2
	}

	return min(score, 1.0)
}

// Suggest returns rule-based improvement suggestions for section content.
// An empty slice means the heuristics found nothing to flag.
func Suggest(content, section string) []string {
	var suggestions []string

	if strings.TrimSpace(content) == "" {
		return []string{"Add content to this section"}
	}

	lower := strings.ToLower(content)
	words := len(strings.Fields(content))

	if (section == "experience" || section == "summary") && words < 20 {
		suggestions = append(suggestions, "Consider adding more detail and specific examples")
	} else if words > 200 {
		suggestions = append(suggestions, "Consider making the content more concise")
	}

	if section == "experience" {
		hasVerb := false
		for _, verb := range actionVerbs[:5] {
			if strings.Contains(lower, verb) {
				hasVerb = true
				break
			}
		}
		if !hasVerb {
			suggestions = append(suggestions, "Start bullet points with strong action verbs")
		}
	}

	if !quantifiablePattern.MatchString(content) {
		suggestions = append(suggestions, "Add specific numbers, percentages, or metrics where possible")
	}

	var found []string
	for _, word := range informalWords {
		if strings.Contains(lower, word) {
			found = append(found, word)
		}
	}
	if len(found) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Replace informal words: %s", strings.Join(found, ", ")))
	}

	return suggestions
}
