package cmd

import (
	"flag"

	"github.com/etnz/fincalc/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion, global flags
// and subcommands included.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, e := range commands {
		fs := flag.NewFlagSet(e.cmd.Name(), flag.ContinueOnError)
		e.cmd.SetFlags(fs)
		root.Sub[e.cmd.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

// flagPredictors predicts file names for file flags, and anything for the
// others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "series-file":
			m[f.Name] = predict.Files("*.*")
		case "f":
			if fs.Name() == "simulate" {
				m[f.Name] = predict.Files("*.yaml")
			} else {
				m[f.Name] = predict.Files("*.json")
			}
		case "existing":
			m[f.Name] = predict.Files("*.json")
		default:
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				m[f.Name] = predict.Nothing
			} else {
				m[f.Name] = predict.Something
			}
		}
	})
	return m
}
