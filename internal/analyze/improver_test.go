package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImprove_RuleBasedWithoutClient(t *testing.T) {
	i := NewImprover()

	got := i.Improve(context.Background(), "  led the team.   shipped   the rewrite ", "experience", UserContext{})
	assert.Equal(t, "Led the team. Shipped the rewrite", got)
}

func TestRuleBasedImprovement_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "One two three", ruleBasedImprovement("one\n\ttwo   three"))
}

func TestImprovementPrompt_PerSection(t *testing.T) {
	assert.Contains(t, improvementPrompt("experience", UserContext{}), "bullet points starting with action verbs")
	assert.Contains(t, improvementPrompt("summary", UserContext{}), "compelling professional summary")
	assert.Contains(t, improvementPrompt("skills", UserContext{}), "Organize skills by category")
	assert.NotContains(t, improvementPrompt("education", UserContext{}), "bullet points starting")
}

func TestImprovementPrompt_IncludesUserContext(t *testing.T) {
	prompt := improvementPrompt("summary", UserContext{TargetPosition: "Staff Engineer", YearsExperience: 12})
	assert.Contains(t, prompt, "Staff Engineer")
	assert.Contains(t, prompt, "12 years")
}

func TestRetry_ReturnsFirstSuccess(t *testing.T) {
	calls := 0
	got, err := retry(3, func() (int, error) {
		calls++
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := retry(2, func() (int, error) {
		calls++
		return 0, assert.AnError
	})
	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, calls)
}
