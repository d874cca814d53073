package cmd

import (
	"flag"

	"github.com/etnz/journal"
	"github.com/etnz/journal/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// boolFlag is implemented by flags that take no value.
type boolFlag interface{ IsBoolFlag() bool }

// flagPredictors predicts the values of the flags visited by visitAll.
func flagPredictors(visitAll func(func(*flag.Flag))) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	visitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "o":
			flags[f.Name] = predict.Files("*.md")
		case f.Name == "dir":
			flags[f.Name] = predict.Dirs("*")
		case f.Name == "config":
			flags[f.Name] = predict.Files("*.yaml")
		case f.Name == "period":
			flags[f.Name] = predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"}
		default:
			if b, ok := f.Value.(boolFlag); ok && b.IsBoolFlag() {
				flags[f.Name] = predict.Nothing
			} else {
				flags[f.Name] = predict.Something
			}
		}
	})
	return flags
}

// argPredictor predicts the positional arguments of a command.
func argPredictor(name string) complete.Predictor {
	switch name {
	case "digest":
		return predict.Set(digestKinds)
	case "topic":
		topics, _ := docs.GetAllTopics()
		return predict.Set(append(topics, "readme"))
	case "resolve":
		var statuses predict.Set
		for _, s := range journal.Statuses {
			statuses = append(statuses, s.String())
		}
		return statuses
	default:
		return predict.Nothing
	}
}

// Completion describes the command line of c for shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(c.VisitAll),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		root.Sub[sc.Name()] = &complete.Command{
			Flags: flagPredictors(fs.VisitAll),
			Args:  argPredictor(sc.Name()),
		}
	})
	return root
}
