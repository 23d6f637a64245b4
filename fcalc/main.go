// Command fcalc computes portfolio performance and tax scenarios from local
// files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/etnz/fincalc/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// .env provides the environment defaults of the global flags.
	envErr := godotenv.Load()

	cmd.Completion().Complete("fcalc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.LoadEnv(flag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	cmd.SetupLogging()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		slog.Warn("cannot load .env", "error", envErr)
	}

	if sub := flag.Arg(0); sub != "" && !cmd.Known(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
