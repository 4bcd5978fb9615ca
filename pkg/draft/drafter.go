// Package draft generates campaign email copy from the campaign's context.
package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/sashabaranov/go-openai"
)

// Input describes one email to draft.
type Input struct {
	Context  schematype.CampaignContext
	LeadName string
	Position int
	Total    int
}

// Email is a drafted subject and body.
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Drafter produces email copy. The OpenAI implementation is the default; a
// template fallback covers development and outages.
type Drafter interface {
	Draft(ctx context.Context, in Input) (*Email, error)
}

// OpenAIDrafter drafts emails with a chat completion.
type OpenAIDrafter struct {
	client *openai.Client
	model  string
}

// NewOpenAIDrafter creates a drafter backed by the OpenAI API.
func NewOpenAIDrafter(apiKey, model string) *OpenAIDrafter {
	if model == "" {
		model = openai.GPT4TurboPreview
	}
	return &OpenAIDrafter{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func systemPrompt(c schematype.CampaignContext) string {
	return fmt.Sprintf(
		"You write concise cold outreach emails for %s. Product: %s. Problem solved: %s. Tone: %s. "+
			"End every email with this call to action: %s. "+
			"Reply with the subject on the first line prefixed 'Subject: ', then a blank line, then the body.",
		c.CompanyName, c.ProductDescription, c.ProblemSolved, c.Tone, c.CallToAction)
}

// Draft generates one email for a sequence step.
func (d *OpenAIDrafter) Draft(ctx context.Context, in Input) (*Email, error) {
	userPrompt := fmt.Sprintf("Write email %d of %d in the sequence, addressed to %s.",
		in.Position, in.Total, in.LeadName)
	if in.Position > 1 {
		userPrompt += " This is a follow-up; reference the earlier email briefly."
	}

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       d.model,
		Temperature: 0.7,
		MaxTokens:   500,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(in.Context)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to draft email: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	return parseCompletion(resp.Choices[0].Message.Content), nil
}

// parseCompletion splits "Subject: ..." from the body, tolerating models
// that skip the prefix.
func parseCompletion(content string) *Email {
	content = strings.TrimSpace(content)
	lines := strings.SplitN(content, "\n", 2)

	subject := strings.TrimSpace(strings.TrimPrefix(lines[0], "Subject:"))
	body := ""
	if len(lines) > 1 {
		body = strings.TrimSpace(lines[1])
	}
	if body == "" {
		body = content
	}

	return &Email{Subject: subject, Body: body}
}

// TemplateDrafter fills a fixed template from the campaign context. Used when
// no OpenAI key is configured.
type TemplateDrafter struct{}

// NewTemplateDrafter creates the fallback drafter.
func NewTemplateDrafter() *TemplateDrafter {
	return &TemplateDrafter{}
}

// Draft renders the template for a sequence step.
func (d *TemplateDrafter) Draft(_ context.Context, in Input) (*Email, error) {
	greeting := "Hi"
	if in.LeadName != "" {
		greeting = fmt.Sprintf("Hi %s", in.LeadName)
	}

	subject := fmt.Sprintf("%s — %s", in.Context.CompanyName, in.Context.ProblemSolved)
	opener := fmt.Sprintf("%s,\n\nI'm reaching out from %s. %s",
		greeting, in.Context.CompanyName, in.Context.ProductDescription)
	if in.Position > 1 {
		subject = "Re: " + subject
		opener = fmt.Sprintf("%s,\n\nFollowing up on my earlier note about %s.",
			greeting, in.Context.ProblemSolved)
	}

	body := fmt.Sprintf("%s\n\n%s\n", opener, in.Context.CallToAction)
	return &Email{Subject: subject, Body: body}, nil
}
