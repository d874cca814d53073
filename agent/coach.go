package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

const coachInstruction = `
You are a calibration coach. The user keeps a journal of the recommendations
they make, with the outcome they expected and the outcome that actually
happened, plus self-assessments, notes and lessons learned.

Help the user make better predictions:
  - point at recommendations that were over or underestimated and what they have in common,
  - relate rejections to the feedback that was given,
  - remind the user of the follow-ups that are due,
  - suggest one concrete habit to improve the success rate.

Be brief. Answer in Markdown. Never invent records that are not in the journal.
`

const analystInstruction = `
You are the archivist of the user's journals. Use the Tools to read the
recommendation tracker report, the follow-ups that are due and the journal
digests. Quote the figures you find, do not compute new ones.
`

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// NewCoach creates the coach. It talks to the user and asks the experts.
func NewCoach(model string, experts ...*Expert) *Expert {
	if model == "" {
		model = DefaultModel
	}
	cfg := &genai.GenerateContentConfig{SystemInstruction: instruction(coachInstruction)}
	var lib Library
	if len(experts) > 0 {
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: NewDeclaration(experts)}}
		lib = NewLibrary(experts)
	}
	return &Expert{
		Name:      "Coach",
		ModelName: model,
		Config:    cfg,
		Library:   lib,
	}
}

// NewArchivist creates the expert reading the journals through tools.
func NewArchivist(model string, tools ...*Tool) *Expert {
	if model == "" {
		model = DefaultModel
	}
	return &Expert{
		Name: "Archivist",
		Description: `The Archivist reads the user's journals: the recommendation tracker,
		the follow-ups due, the self-assessments, the knowledge base and the learning log.
		Ask the Archivist for any fact or figure about the user's history.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools:             []*genai.Tool{{FunctionDeclarations: NewDeclaration(tools)}},
			SystemInstruction: instruction(analystInstruction),
		},
		Library: NewLibrary(tools),
	}
}

// ReviewPrompt is the message asking the coach to review a rendered report.
func ReviewPrompt(report string) string {
	var b strings.Builder
	b.WriteString("Review my recommendation tracker report below. ")
	b.WriteString("Tell me how well calibrated I am and what to do next.\n\n")
	b.WriteString(strings.TrimSpace(report))
	b.WriteString("\n")
	return b.String()
}

// Review asks a fresh coach to review report and returns its answer.
func Review(ctx context.Context, client *genai.Client, model, report string) (string, error) {
	coach := NewCoach(model)
	if err := coach.Start(ctx, client); err != nil {
		return "", err
	}
	content, err := coach.Ask(ctx, &genai.Part{Text: ReviewPrompt(report)})
	if err != nil {
		return "", fmt.Errorf("reviewing report: %w", err)
	}
	return content.Parts[0].Text, nil
}
