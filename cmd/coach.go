package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/journal/agent"
	"github.com/etnz/journal/config"
	"github.com/etnz/journal/date"
	"github.com/etnz/journal/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type coachCmd struct {
	review bool
}

func (*coachCmd) Name() string     { return "coach" }
func (*coachCmd) Synopsis() string { return "talk with the AI calibration coach" }
func (*coachCmd) Usage() string {
	return `jnl coach [-review] [prompt]

  Starts an interactive session with the coach, a Gemini model that can read
  the journals. With -review, the coach reviews the tracker report and exits.
  Requires GEMINI_API_KEY.
`
}

func (c *coachCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.review, "review", false, "Review the tracker report and exit")
}

func (c *coachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	if c.review {
		r, err := trackerReport()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error %v\n", err)
			return subcommands.ExitFailure
		}
		answer, err := agent.Review(ctx, client, cfg.Coach.Model, renderer.Tracker(r))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Coach failed:", err)
			return subcommands.ExitFailure
		}
		printMarkdown(answer)
		return subcommands.ExitSuccess
	}

	archivist := agent.NewArchivist(cfg.Coach.Model, journalTools(cfg)...)
	a := agent.New(stdout, os.Stdin, cfg.Coach.Model, archivist)
	a.Print = func(_ io.Writer, s string) { printMarkdown(s) }

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// journalTools exposes the reports of the journals to the coach.
func journalTools(cfg *config.Config) []*agent.Tool {
	tools := []*agent.Tool{
		{
			Name:        "TrackerReport",
			Description: "The recommendation tracker report: statistics, success tier, what works, rejection reasons and follow-ups due.",
			Run: func(context.Context) (string, error) {
				r, err := trackerReport()
				if err != nil {
					return "", err
				}
				return renderer.Tracker(r), nil
			},
		},
	}
	for _, kind := range digestKinds {
		tools = append(tools, &agent.Tool{
			Name:        "Digest" + strings.ToUpper(kind[:1]) + kind[1:],
			Description: "The monthly digest of the " + kind + " journal.",
			Run: func(context.Context) (string, error) {
				return digest(cfg, kind, date.Monthly, 10)
			},
		})
	}
	return tools
}
