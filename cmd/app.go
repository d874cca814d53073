// Package cmd implements the jnl command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/journal"
	"github.com/etnz/journal/config"
	"github.com/etnz/journal/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&suggestCmd{}, "recommendations")
	c.Register(&resolveCmd{}, "recommendations")
	c.Register(&dueCmd{}, "recommendations")
	c.Register(&reportCmd{}, "recommendations")

	c.Register(&assessCmd{}, "journals")
	c.Register(&rememberCmd{}, "journals")
	c.Register(&learnCmd{}, "journals")
	c.Register(&digestCmd{}, "journals")

	c.Register(&coachCmd{}, "assistant")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", config.DefaultPath(), "Path to the YAML configuration file")
	dirFlag    = flag.String("dir", "", "Folder holding the journals, overrides the configuration")
	Verbose    = flag.Bool("v", false, "Verbose logging")
	raw        = flag.Bool("raw", false, "Print raw Markdown instead of rendering it for the terminal")
)

// EnvTestingNow freezes the clock, for documentation and tests.
const EnvTestingNow = "JNL_TESTING_NOW"

// stdout receives the commands' output.
var stdout io.Writer = os.Stdout

// settings loads the configuration and applies the command line flags.
func settings() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *dirFlag != "" {
		cfg.Dir = *dirFlag
	}
	return cfg, nil
}

// now is the application clock.
func now() time.Time {
	if s := os.Getenv(EnvTestingNow); s != "" {
		t, err := date.ParseInstant(s, time.Local)
		if err == nil {
			return t
		}
		log.Printf("warning: ignoring %s=%q: %v", EnvTestingNow, s, err)
	}
	return time.Now()
}

// debugf logs only in verbose mode.
func debugf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// OpenTracker opens the recommendation tracker of the configured folder.
func OpenTracker(cfg *config.Config) (*journal.Tracker, error) {
	comparison, err := journal.ParseComparison(cfg.Comparison)
	if err != nil {
		return nil, err
	}
	path := cfg.Path(cfg.Files.Recommendations)
	debugf("opening tracker %s (%v comparison)", path, comparison)
	return journal.OpenTracker(journal.Options{
		Store:      journal.FileStore{Path: path},
		Comparison: comparison,
		Now:        now,
	})
}

// OpenLog opens the journal stored in the file name of the configured folder.
func OpenLog[E journal.Entry](cfg *config.Config, name string) (*journal.Log[E], error) {
	path := cfg.Path(name)
	debugf("opening journal %s", path)
	l, err := journal.OpenLog[E](journal.FileStore{Path: path})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return l, nil
}

// printMarkdown renders md for the terminal, unless raw output is requested.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("warning: cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("warning: cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// output writes md to file, or prints it when file is empty.
func output(md, file string) error {
	if file == "" {
		printMarkdown(md)
		return nil
	}
	if err := os.WriteFile(file, []byte(md), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	debugf("report written to %s", file)
	return nil
}
