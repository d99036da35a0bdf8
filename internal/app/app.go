// Package app wires input acquisition, parsing and materialization into a
// single run of the converter.
package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harsh1t3/tree-converter/internal/fsops"
	"github.com/harsh1t3/tree-converter/internal/render"
	"github.com/harsh1t3/tree-converter/internal/report"
	"github.com/harsh1t3/tree-converter/internal/safety"
	"github.com/harsh1t3/tree-converter/internal/tree"
)

// Options holds every setting of one run.
type Options struct {
	InPath   string // input file; "-" reads Stdin; empty means interactive paste
	OutDir   string // parent of the created root; defaults to "."
	RootName string // overrides the parsed root name when set
	Sample   bool   // use the built-in sample diagram
	DryRun   bool   // preview only, no filesystem mutation
	Plain    bool   // no icons, no colors
	DirPerm  os.FileMode
	FilePerm os.FileMode

	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
}

// Run reads the diagram, parses it and either previews or materializes it.
// Failures before materialization abort the run; failures at individual
// nodes are reported and tolerated.
func Run(o Options) error {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.OutDir == "" {
		o.OutDir = "."
	}

	// 1) Acquire the tree text: sample, file, stdin or interactive paste.
	text, err := readInput(o)
	if err != nil {
		return err
	}

	// 2) Parse it into a forest with a single root.
	forest, err := tree.Parse(strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("parse tree: %w", err)
	}
	tree.OverrideRoot(forest, o.RootName)

	// 3) The root must be a single sane path segment.
	if err := safety.ValidateName(forest[0].Name); err != nil {
		return fmt.Errorf("invalid root name: %w", err)
	}

	// 4) Preview the canonical tree first on dry runs.
	if o.DryRun {
		fmt.Fprintln(o.Stdout, "DRY RUN: structure to be created")
		fmt.Fprint(o.Stdout, render.Tree(forest, render.Options{Icons: !o.Plain}))
	}

	// 5) Materialize (or plan) and report per-node outcomes.
	outcomes, err := fsops.Materialize(forest, o.OutDir, fsops.Options{
		DryRun:   o.DryRun,
		DirPerm:  o.DirPerm,
		FilePerm: o.FilePerm,
		Logger:   o.Logger,
	})
	if err != nil {
		return err
	}
	failed := report.New(o.Stdout, o.Plain).Print(outcomes)

	if !o.DryRun {
		dest := filepath.Join(o.OutDir, forest[0].Name)
		if abs, err := filepath.Abs(dest); err == nil {
			dest = abs
		}
		if failed > 0 {
			fmt.Fprintf(o.Stdout, "Structure created in: %s (%d entries failed)\n", dest, failed)
		} else {
			fmt.Fprintf(o.Stdout, "Structure created in: %s\n", dest)
		}
	}
	return nil
}

func readInput(o Options) (string, error) {
	switch {
	case o.Sample:
		return tree.Sample, nil

	case o.InPath == "-":
		b, err := io.ReadAll(o.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil

	case o.InPath != "":
		b, err := os.ReadFile(o.InPath)
		if err != nil {
			return "", fmt.Errorf("read input file %q: %w", o.InPath, err)
		}
		return string(b), nil

	default:
		return readInteractive(o.Stdin, o.Stdout)
	}
}

// readInteractive collects pasted lines until a blank line ends the entry
// (after at least one non-blank line) or the input hits EOF.
func readInteractive(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Paste your tree below. Press ENTER on an empty line to finish:")

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" && len(lines) > 0 {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}
