package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown prints a markdown document on stdout, styled when stdout is
// a terminal and as is otherwise.
func printMarkdown(doc string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(doc)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(doc); err == nil {
			fmt.Print(out)
			return
		}
	}
	slog.Debug("cannot render markdown", "error", err)
	fmt.Print(doc)
}
