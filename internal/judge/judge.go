// Package judge provides the AI fallback verdict consulted when structural
// comparison says two answers differ. The equivalence engine has no
// knowledge of this package; only the grading flow calls it.
package judge

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Judge decides whether a submission is an acceptable answer to a question
// given the reference answer.
type Judge interface {
	Equivalent(ctx context.Context, prompt, reference, submission string) (bool, error)
}

// Gemini asks a Gemini model for a yes/no verdict.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini judge.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Equivalent asks the model whether the submission answers the question as
// well as the reference does. The reply is constrained to YES or NO and
// parsed defensively; anything else is an error, never a silent verdict.
func (g *Gemini) Equivalent(ctx context.Context, prompt, reference, submission string) (bool, error) {
	text := buildVerdictPrompt(prompt, reference, submission)
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return false, fmt.Errorf("gemini verdict failed: %w", err)
	}

	return parseVerdict(result.Text())
}

// Close releases the underlying client. The genai client holds no
// resources that need explicit release, so this is a no-op.
func (g *Gemini) Close() error {
	return nil
}

func buildVerdictPrompt(prompt, reference, submission string) string {
	var b strings.Builder
	b.WriteString("You grade answers in a kubectl training exercise.\n")
	b.WriteString("Question:\n")
	b.WriteString(prompt)
	b.WriteString("\n\nReference answer:\n")
	b.WriteString(reference)
	b.WriteString("\n\nStudent answer:\n")
	b.WriteString(submission)
	b.WriteString("\n\nIs the student answer functionally equivalent to the reference answer? ")
	b.WriteString("Ignore differences in names, aliases, flag order, quoting, and formatting. ")
	b.WriteString("Reply with exactly one word: YES or NO.")
	return b.String()
}

func parseVerdict(reply string) (bool, error) {
	answer := strings.ToLower(strings.TrimSpace(reply))
	switch {
	case strings.HasPrefix(answer, "yes"):
		return true, nil
	case strings.HasPrefix(answer, "no"):
		return false, nil
	default:
		return false, fmt.Errorf("unparseable verdict %q", reply)
	}
}
