package cmd

import (
	"flag"

	"github.com/etnz/stockavg/docs"
	"github.com/etnz/stockavg/export"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of savg and its subcommands.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(Commands)),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if c.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, "readme", "*"))
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	formats := make(predict.Set, len(export.Formats))
	for i, f := range export.Formats {
		formats[i] = f.String()
	}

	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			predictors[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "l":
			predictors[f.Name] = predict.Files("*.json")
		case "config":
			predictors[f.Name] = predict.Files("*.yaml")
		case "o":
			predictors[f.Name] = predict.Dirs("*")
		case "f":
			predictors[f.Name] = formats
		default:
			predictors[f.Name] = predict.Something
		}
	})
	return predictors
}
