// Command jnl keeps personal journals: a recommendation tracker measuring
// how well calibrated its author is, a self-assessment journal, a knowledge
// base and a learning log.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/journal/cmd"
	"github.com/google/subcommands"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("jnl: ")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Exits when called by the shell for completion.
	cmd.Completion(commander).Complete("jnl")

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a command of c.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		found = found || sc.Name() == name
	})
	return found
}
