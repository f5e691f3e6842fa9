package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	openai "github.com/sashabaranov/go-openai"
)

// UserContext carries profile details woven into the improvement prompt.
type UserContext struct {
	TargetPosition  string
	YearsExperience int
}

const basePrompt = `You are a professional resume writer. Improve the provided content to be more professional, impactful, and ATS-friendly.

Guidelines:
- Use strong action verbs
- Include specific metrics where possible
- Keep language professional and concise
- Focus on achievements and results
- Maintain accuracy - don't add false information`

// Improver rewrites section content. With a configured client it asks the
// chat-completion API; without one, or when the API fails, it falls back to
// rule-based cleanup so an improvement run always produces output.
type Improver struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// Option configures an Improver.
type Option func(*Improver)

// WithClient supplies a chat-completion client. A nil client keeps the
// improver rule-based.
func WithClient(client *openai.Client) Option {
	return func(i *Improver) { i.client = client }
}

// WithModel overrides the completion model.
func WithModel(model string) Option {
	return func(i *Improver) {
		if model != "" {
			i.model = model
		}
	}
}

// NewImprover builds an Improver. By default it has no client and performs
// rule-based improvement only.
func NewImprover(opts ...Option) *Improver {
	i := &Improver{
		model:  openai.GPT3Dot5Turbo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Improve returns a rewritten version of content for the given section.
// API calls are retried with backoff; any persistent failure degrades to the
// rule-based cleanup rather than returning an error to the workflow.
func (i *Improver) Improve(ctx context.Context, content, section string, user UserContext) string {
	if i.client == nil {
		return ruleBasedImprovement(content)
	}

	improved, err := retry(3, func() (string, error) {
		return i.complete(ctx, content, section, user)
	})
	if err != nil {
		i.logger.Warn("AI improvement failed, falling back to rule-based cleanup", "section", section, "error", err)
		return ruleBasedImprovement(content)
	}
	return improved
}

func (i *Improver) complete(ctx context.Context, content, section string, user UserContext) (string, error) {
	resp, err := i.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: i.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: improvementPrompt(section, user)},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Improve this content:\n\n%s", content)},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// improvementPrompt builds the system prompt, specialized per section type
// and annotated with the user's target position and experience when known.
func improvementPrompt(section string, user UserContext) string {
	prompt := basePrompt
	switch section {
	case "experience":
		prompt += "\n- Format as bullet points starting with action verbs"
	case "summary":
		prompt += "\n- Create a compelling professional summary"
	case "skills":
		prompt += "\n- Organize skills by category and relevance"
	}
	if user.TargetPosition != "" {
		prompt += fmt.Sprintf("\n\nThe candidate is targeting a %s role with %d years of experience.",
			user.TargetPosition, user.YearsExperience)
	}
	return prompt
}

var multiSpace = regexp.MustCompile(`\s+`)

// ruleBasedImprovement is the offline fallback: collapse runs of whitespace
// and capitalize sentence starts.
func ruleBasedImprovement(content string) string {
	improved := multiSpace.ReplaceAllString(strings.TrimSpace(content), " ")
	return capitalizeSentences(improved)
}

func capitalizeSentences(s string) string {
	runes := []rune(s)
	atStart := true
	for idx, r := range runes {
		switch {
		case atStart && unicode.IsLetter(r):
			runes[idx] = unicode.ToUpper(r)
			atStart = false
		case r == '.' || r == '!' || r == '?':
			atStart = true
		case !unicode.IsSpace(r):
			atStart = false
		}
	}
	return string(runes)
}

// retry runs fn up to attempts times with linear backoff, returning the
// first success or the last error.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
