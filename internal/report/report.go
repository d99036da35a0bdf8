// Package report renders materializer outcomes for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/harsh1t3/tree-converter/internal/fsops"
)

// Reporter writes one line per outcome, with the would-be content indented
// underneath previewed files.
type Reporter struct {
	out     io.Writer
	profile termenv.Profile
}

// New builds a Reporter. With plain set, output carries no escape sequences.
func New(out io.Writer, plain bool) *Reporter {
	profile := termenv.ColorProfile()
	if plain {
		profile = termenv.Ascii
	}
	return &Reporter{out: out, profile: profile}
}

// Print renders all outcomes and returns how many of them failed.
func (r *Reporter) Print(outcomes []fsops.Outcome) int {
	failed := 0
	for _, o := range outcomes {
		kind := "dir "
		if o.IsFile {
			kind = "file"
		}
		switch o.Action {
		case fsops.ActionCreated:
			fmt.Fprintf(r.out, "%s %s %s\n", r.paint("create", "#22c55e"), kind, o.Path)
		case fsops.ActionExists:
			fmt.Fprintf(r.out, "%s %s %s\n", r.paint("exists", "#eab308"), kind, o.Path)
		case fsops.ActionPreviewed:
			fmt.Fprintf(r.out, "%s   %s %s\n", r.paint("plan", "#38bdf8"), kind, o.Path)
			if o.Content != "" {
				for _, line := range strings.Split(strings.TrimRight(o.Content, "\n"), "\n") {
					fmt.Fprintf(r.out, "         | %s\n", line)
				}
			}
		case fsops.ActionFailed:
			failed++
			fmt.Fprintf(r.out, "%s %s %s: %v\n", r.paint("failed", "#ef4444"), kind, o.Path, o.Err)
		}
	}
	return failed
}

func (r *Reporter) paint(s, hex string) string {
	return termenv.String(s).Foreground(r.profile.Color(hex)).String()
}
