package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/journal"
	"github.com/etnz/journal/config"
	"github.com/etnz/journal/date"
	"github.com/etnz/journal/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// entryTime parses the -at flag, defaulting to now.
func entryTime(at string) (time.Time, error) {
	if at == "" {
		return now(), nil
	}
	return date.ParseTimestamp(at, now())
}

// addEntry appends e to the journal file name.
func addEntry[E journal.Entry](name func(*config.Config) string, e E) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := OpenLog[E](cfg, name(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitFailure
	}
	if err := l.Add(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%s: %d entries\n", e.Category(), len(l.Entries(e.Category())))
	return subcommands.ExitSuccess
}

type assessCmd struct {
	area  string
	score string
	at    string
}

func (*assessCmd) Name() string     { return "assess" }
func (*assessCmd) Synopsis() string { return "score an area in the self-assessment journal" }
func (*assessCmd) Usage() string {
	return `jnl assess -area <area> -score <score> [-at <date>] [note]

  Records a self-assessment score for an area of work.

Usage Examples:
$ jnl assess -area focus -score 7.5 "Long meetings in the afternoon"
`
}

func (c *assessCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.area, "area", "", "Area assessed (required)")
	f.StringVar(&c.score, "score", "", "Score given (required)")
	f.StringVar(&c.at, "at", "", "When, now by default")
}

func (c *assessCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.area == "" || c.score == "" {
		fmt.Fprintln(os.Stderr, "Error: -area and -score are required")
		return subcommands.ExitUsageError
	}
	score, err := decimal.NewFromString(c.score)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -score %q: %v\n", c.score, err)
		return subcommands.ExitUsageError
	}
	at, err := entryTime(c.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
		return subcommands.ExitUsageError
	}
	e := journal.Assessment{At: at, Area: c.area, Score: score, Note: strings.Join(f.Args(), " ")}
	return addEntry(func(cfg *config.Config) string { return cfg.Files.Assessments }, e)
}

type rememberCmd struct {
	topic      string
	importance int
	tags       string
	at         string
}

func (*rememberCmd) Name() string     { return "remember" }
func (*rememberCmd) Synopsis() string { return "add a note to the knowledge base" }
func (*rememberCmd) Usage() string {
	return `jnl remember -topic <topic> [-importance <n>] [-tags a,b] [-at <date>] <content>

  Records a note worth remembering.

Usage Examples:
$ jnl remember -topic go -importance 3 -tags style "Accept interfaces, return structs"
`
}

func (c *rememberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.topic, "topic", "", "Topic of the note (required)")
	f.IntVar(&c.importance, "importance", 1, "Importance, higher first in digests")
	f.StringVar(&c.tags, "tags", "", "Comma separated tags")
	f.StringVar(&c.at, "at", "", "When, now by default")
}

func (c *rememberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	content := strings.TrimSpace(strings.Join(f.Args(), " "))
	if c.topic == "" || content == "" {
		fmt.Fprintln(os.Stderr, "Error: -topic and a content are required")
		return subcommands.ExitUsageError
	}
	at, err := entryTime(c.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
		return subcommands.ExitUsageError
	}
	var tags []string
	for _, tag := range strings.Split(c.tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	e := journal.Note{At: at, Topic: c.topic, Content: content, Importance: c.importance, Tags: tags}
	return addEntry(func(cfg *config.Config) string { return cfg.Files.Notes }, e)
}

type learnCmd struct {
	topic  string
	source string
	at     string
}

func (*learnCmd) Name() string     { return "learn" }
func (*learnCmd) Synopsis() string { return "add a lesson to the learning log" }
func (*learnCmd) Usage() string {
	return `jnl learn -topic <topic> [-source <where>] [-at <date>] <lesson>

  Records a lesson learned.

Usage Examples:
$ jnl learn -topic testing -source "code review" "Inject the clock"
`
}

func (c *learnCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.topic, "topic", "", "Topic of the lesson (required)")
	f.StringVar(&c.source, "source", "", "Where the lesson comes from")
	f.StringVar(&c.at, "at", "", "When, now by default")
}

func (c *learnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lesson := strings.TrimSpace(strings.Join(f.Args(), " "))
	if c.topic == "" || lesson == "" {
		fmt.Fprintln(os.Stderr, "Error: -topic and a lesson are required")
		return subcommands.ExitUsageError
	}
	at, err := entryTime(c.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
		return subcommands.ExitUsageError
	}
	e := journal.Insight{At: at, Topic: c.topic, Lesson: lesson, Source: c.source}
	return addEntry(func(cfg *config.Config) string { return cfg.Files.Insights }, e)
}

// Journal kinds accepted by digest.
var digestKinds = []string{"assessments", "notes", "insights"}

type digestCmd struct {
	period string
	top    int
	output string
}

func (*digestCmd) Name() string     { return "digest" }
func (*digestCmd) Synopsis() string { return "summarize a journal over a period" }
func (*digestCmd) Usage() string {
	return `jnl digest [-period <period>] [-top <n>] [-o <file>] assessments|notes|insights

  Summarizes a journal over the period containing today.
`
}

func (c *digestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "weekly", "daily, weekly, monthly, quarterly or yearly")
	f.IntVar(&c.top, "top", 5, "Number of notes in the knowledge base digest")
	f.StringVar(&c.output, "o", "", "Write the Markdown to this file instead of the terminal")
}

func (c *digestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expecting one of %s\n", strings.Join(digestKinds, ", "))
		return subcommands.ExitUsageError
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -period: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	md, err := digest(cfg, f.Arg(0), period, c.top)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitFailure
	}
	if err := output(md, c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// digest renders the digest of a journal kind.
func digest(cfg *config.Config, kind string, p date.Period, top int) (string, error) {
	switch kind {
	case "assessments":
		l, err := OpenLog[journal.Assessment](cfg, cfg.Files.Assessments)
		if err != nil {
			return "", err
		}
		return renderer.Assessments(journal.DigestAssessments(l, now(), p)), nil
	case "notes":
		l, err := OpenLog[journal.Note](cfg, cfg.Files.Notes)
		if err != nil {
			return "", err
		}
		return renderer.Notes(journal.DigestNotes(l, now(), p, top)), nil
	case "insights":
		l, err := OpenLog[journal.Insight](cfg, cfg.Files.Insights)
		if err != nil {
			return "", err
		}
		return renderer.Insights(journal.DigestInsights(l, now(), p)), nil
	default:
		return "", fmt.Errorf("unknown journal %q, expecting one of %s", kind, strings.Join(digestKinds, ", "))
	}
}
