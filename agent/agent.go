// Package agent implements the AI coach reviewing the journals.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs an interactive session with the coach.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Coach   *Expert
	Experts []*Expert
	// Print writes an answer, plain text by default.
	Print func(io.Writer, string)
}

// New creates an Agent talking on w and listening on r.
func New(w io.Writer, r io.Reader, model string, experts ...*Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Experts: experts,
		Coach:   NewCoach(model, experts...),
		Print:   func(w io.Writer, s string) { fmt.Fprintln(w, s) },
	}
}

// Start opens the chat sessions of the coach and its experts.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Coach.Start(ctx, client)
}

const prompt = "coach> "

// Run answers prompts first, then the user's input until "bye" or end of input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if !a.Coach.Started() {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the jnl coach. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(input) == "" {
				fmt.Fprintln(a.w)
				return nil
			}
			if err != nil && err != io.EOF {
				return err
			}
			input = strings.TrimSpace(input)
		}

		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.Coach.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, content.Parts[0].Text)
	}
}
