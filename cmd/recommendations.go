package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/journal"
	"github.com/etnz/journal/date"
	"github.com/etnz/journal/renderer"
	"github.com/google/subcommands"
)

type suggestCmd struct {
	context   string
	rationale string
	expect    string
	followUp  string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "record a new recommendation" }
func (*suggestCmd) Usage() string {
	return `jnl suggest [-context <ctx>] [-rationale <why>] [-expect <outcome>] [-follow-up <date>] <recommendation>

  Records a pending recommendation and prints its id.

Usage Examples:
$ jnl suggest -context api -expect 30% -follow-up +2w "Cache the search index"
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.context, "context", "", "Context the recommendation applies to")
	f.StringVar(&c.rationale, "rationale", "", "Why it is recommended")
	f.StringVar(&c.expect, "expect", "", "Expected outcome")
	f.StringVar(&c.followUp, "follow-up", "", "When to follow up, see 'jnl topic dates'")
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	body := strings.TrimSpace(strings.Join(f.Args(), " "))
	if body == "" {
		fmt.Fprintln(os.Stderr, "Error: the recommendation is missing")
		return subcommands.ExitUsageError
	}
	s := journal.Suggestion{
		Body:            body,
		Context:         c.context,
		Rationale:       c.rationale,
		ExpectedOutcome: c.expect,
	}
	if c.followUp != "" {
		at, err := date.ParseTimestamp(c.followUp, now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -follow-up: %v\n", err)
			return subcommands.ExitUsageError
		}
		s.FollowUpAt = at
	}

	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := OpenTracker(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := t.Add(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving recommendation: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, id)
	return subcommands.ExitSuccess
}

type resolveCmd struct {
	feedback string
	actual   string
}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "change the status of a recommendation" }
func (*resolveCmd) Usage() string {
	return `jnl resolve [-feedback <text>] [-actual <outcome>] <id> <status>

  Moves a recommendation to 'implemented', 'rejected', 'unknown' or back to
  'pending', and prints the lesson learned. Implemented and rejected
  recommendations are final.

Usage Examples:
$ jnl resolve -actual 45% 4b1c... implemented
$ jnl resolve -feedback "Too much overhead for the team" 4b1c... rejected
`
}

func (c *resolveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.feedback, "feedback", "", "Feedback received")
	f.StringVar(&c.actual, "actual", "", "Actual outcome")
}

func (c *resolveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expecting <id> <status>")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	status, err := journal.ParseStatus(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := OpenTracker(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := t.Transition(id, status, c.feedback, c.actual); err != nil {
		switch {
		case errors.Is(err, journal.ErrNotFound), errors.Is(err, journal.ErrResolved):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Error saving recommendation: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	r, _ := t.Get(id)
	if r.LessonLearned != nil {
		fmt.Fprintln(stdout, *r.LessonLearned)
	} else {
		fmt.Fprintf(stdout, "%s is %v\n", id, r.Status)
	}
	return subcommands.ExitSuccess
}

// trackerReport loads the tracker and gathers its report.
func trackerReport() (*renderer.TrackerReport, error) {
	cfg, err := settings()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	t, err := OpenTracker(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening tracker: %w", err)
	}
	at := now()
	return &renderer.TrackerReport{
		AsOf:    at,
		Summary: t.Report(),
		Due:     t.DueForFollowUp(at),
	}, nil
}

type dueCmd struct {
	output string
}

func (*dueCmd) Name() string     { return "due" }
func (*dueCmd) Synopsis() string { return "list the recommendations to follow up" }
func (*dueCmd) Usage() string {
	return `jnl due [-o <file>]

  Lists the pending recommendations whose follow-up date has come.
`
}

func (c *dueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the Markdown to this file instead of the terminal")
}

func (c *dueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := trackerReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitFailure
	}
	if err := output(renderer.Due(r), c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type reportCmd struct {
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the recommendation tracker report" }
func (*reportCmd) Usage() string {
	return `jnl report [-o <file>]

  Displays the statistics, the success tier, what works, why recommendations
  get rejected and the follow-ups due.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the Markdown to this file instead of the terminal")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := trackerReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitFailure
	}
	if err := output(renderer.Tracker(r), c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
