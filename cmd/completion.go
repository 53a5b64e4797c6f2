package cmd

import (
	"flag"

	"github.com/etnz/pocket/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the commander's commands
// and global flags.
//
// Install it with COMP_INSTALL=1 pkt, see github.com/posener/complete/v2.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		root.Sub[sc.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  argsPredictor(sc.Name()),
		}
	})
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "book-file":
			flags[f.Name] = predict.Files("*.jsonl")
		case f.Name == "settlement":
			flags[f.Name] = predict.Set{"cash", "none"}
		case f.Name == "k":
			flags[f.Name] = predict.Set{"asset", "liability", "cash"}
		case isBoolFlag(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// argsPredictor predicts the positional arguments of a command.
func argsPredictor(name string) complete.Predictor {
	switch name {
	case "topic":
		topics, err := docs.GetAllTopics()
		if err != nil {
			return predict.Nothing
		}
		return predict.Set(append(topics, "readme"))
	case "help":
		return complete.PredictFunc(func(prefix string) []string {
			return commandNames()
		})
	}
	return predict.Nothing
}

// commandNames lists the registered command names, for 'pkt help' completion.
func commandNames() []string {
	c := subcommands.NewCommander(flag.NewFlagSet("pkt", flag.ContinueOnError), "pkt")
	Register(c)
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		names = append(names, sc.Name())
	})
	return names
}
