// Package fsops turns a parsed forest into real directories and files.
package fsops

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harsh1t3/tree-converter/internal/safety"
	"github.com/harsh1t3/tree-converter/internal/tree"
)

// Action says what happened (or would happen) to a single node.
type Action string

const (
	ActionCreated   Action = "created"   // entry was written to disk
	ActionExists    Action = "exists"    // entry was already there; left untouched
	ActionPreviewed Action = "previewed" // dry run; nothing touched
	ActionFailed    Action = "failed"    // per-node error; siblings still processed
)

// Outcome records the result of materializing one node.
type Outcome struct {
	Path    string
	IsFile  bool
	Action  Action
	Content string // would-be file body, set on previews
	Err     error  // set when Action is ActionFailed
}

// Options configures a materialization pass.
type Options struct {
	DryRun   bool
	DirPerm  os.FileMode // 0755 when zero
	FilePerm os.FileMode // 0644 when zero
	Logger   *slog.Logger
}

const marker = "Auto-generated file"

// FileContent builds the generated body for a file node: the comment (when
// present) and the name as '#' lines, then a fixed marker.
func FileContent(n *tree.Node) string {
	var b strings.Builder
	if n.Comment != "" {
		b.WriteString("# " + n.Comment + "\n")
	}
	b.WriteString("# " + n.Name + "\n")
	b.WriteString(marker + "\n")
	return b.String()
}

// Materialize walks the forest under base and creates one directory per
// directory node and one file per file node. Existing directories are fine;
// existing files are skipped, never overwritten. A failure at one node is
// recorded and logged but never stops the walk. In dry-run mode no
// filesystem mutation happens at all; every node yields a preview outcome.
//
// The returned error covers only resolving base itself; everything below
// that boundary is reported through the outcome list.
func Materialize(forest []*tree.Node, base string, opts Options) ([]Outcome, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolve base path %q: %w", base, err)
	}
	if opts.DirPerm == 0 {
		opts.DirPerm = 0o755
	}
	if opts.FilePerm == 0 {
		opts.FilePerm = 0o644
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m := &materializer{opts: opts}
	m.walk(forest, abs)
	return m.outcomes, nil
}

type materializer struct {
	opts     Options
	outcomes []Outcome
}

func (m *materializer) walk(nodes []*tree.Node, dir string) {
	for _, n := range nodes {
		target, err := m.resolve(dir, n.Name)
		if err != nil {
			m.fail(filepath.Join(dir, n.Name), n.IsFile, err)
			continue
		}
		if n.IsFile {
			m.file(target, n)
			continue
		}
		if m.dir(target) {
			m.walk(n.Children, target)
		}
	}
}

// resolve validates the segment and confines the target to dir.
func (m *materializer) resolve(dir, name string) (string, error) {
	if err := safety.ValidateName(name); err != nil {
		return "", err
	}
	return safety.Join(dir, name)
}

// dir ensures a directory exists at path and reports whether the walk may
// descend into it.
func (m *materializer) dir(path string) bool {
	if m.opts.DryRun {
		m.add(Outcome{Path: path, Action: ActionPreviewed})
		return true
	}

	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		m.add(Outcome{Path: path, Action: ActionExists})
		return true

	case err == nil:
		m.fail(path, false, fmt.Errorf("a file is in the way"))
		return false

	case os.IsNotExist(err):
		if err := os.MkdirAll(path, m.opts.DirPerm); err != nil {
			m.fail(path, false, err)
			return false
		}
		m.add(Outcome{Path: path, Action: ActionCreated})
		return true

	default:
		m.fail(path, false, fmt.Errorf("stat: %w", err))
		return false
	}
}

func (m *materializer) file(path string, n *tree.Node) {
	content := FileContent(n)

	if m.opts.DryRun {
		m.add(Outcome{Path: path, IsFile: true, Action: ActionPreviewed, Content: content})
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), m.opts.DirPerm); err != nil {
		m.fail(path, true, fmt.Errorf("prepare parent: %w", err))
		return
	}

	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		m.fail(path, true, fmt.Errorf("a directory is in the way"))

	case err == nil:
		// Non-destructive: whatever is there stays there.
		m.add(Outcome{Path: path, IsFile: true, Action: ActionExists})

	case os.IsNotExist(err):
		if err := os.WriteFile(path, []byte(content), m.opts.FilePerm); err != nil {
			m.fail(path, true, err)
			return
		}
		m.add(Outcome{Path: path, IsFile: true, Action: ActionCreated})

	default:
		m.fail(path, true, fmt.Errorf("stat: %w", err))
	}
}

func (m *materializer) add(o Outcome) {
	m.outcomes = append(m.outcomes, o)
}

func (m *materializer) fail(path string, isFile bool, err error) {
	m.opts.Logger.Error("materialize failed", "path", path, "err", err)
	m.add(Outcome{Path: path, IsFile: isFile, Action: ActionFailed, Err: err})
}
