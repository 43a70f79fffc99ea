package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	if stdout != os.Stdout {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderMarkdown styles md for the terminal. md is returned as is when stdout
// is not a terminal.
func renderMarkdown(md string) string {
	if !isTerminal() {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		zap.S().Warnf("cannot create markdown renderer: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		zap.S().Warnf("cannot render markdown: %v", err)
		return md
	}
	return out
}

// printMarkdown prints md on stdout, styled when stdout is a terminal.
func printMarkdown(md string) {
	fmt.Fprint(stdout, renderMarkdown(md))
}
