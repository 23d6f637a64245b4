package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables providing the defaults of the global flags. They are
// also passed to extensions.
const (
	EnvSeriesFile = "FCALC_SERIES_FILE"
	EnvJSONPath   = "FCALC_JSONPATH"
	EnvCurrency   = "FCALC_CURRENCY"
	EnvPrivate    = "FCALC_PRIVATE"
	EnvVerbose    = "FCALC_VERBOSE"
)

// RunExtension attempts to find and execute an external fcalc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "fcalc-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("extension not found in PATH", "name", name, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// global flags are passed as environment variables
	cmd.Env = append(os.Environ(),
		EnvSeriesFile+"="+*seriesFile,
		EnvJSONPath+"="+*jsonPath,
		EnvCurrency+"="+*currency,
		EnvPrivate+"="+strconv.FormatBool(*private),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
