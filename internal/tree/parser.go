package tree

import (
	"bufio"
	"io"
	"path"
	"strings"
)

// DefaultRootName is used when the first line is indented and therefore
// does not name the root.
const DefaultRootName = "my-project"

// frame tracks the most recently opened directory at a given level; new
// nodes are appended to the children of the deepest frame whose level is
// strictly below theirs.
type frame struct {
	level    int
	path     string
	children *[]*Node
}

// Parse reads a tree diagram and reconstructs the node hierarchy.
// Supports box-drawing connectors (├──/└──) as well as plain space
// indentation, in a single left-to-right pass over the lines.
// The returned forest holds exactly one root.
func Parse(r io.Reader) ([]*Node, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var lines []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return build(lines), nil
}

// ParseString parses an in-memory diagram.
func ParseString(s string) []*Node {
	forest, _ := Parse(strings.NewReader(s)) // strings.Reader never fails
	return forest
}

// OverrideRoot replaces the parsed root's name and path.
func OverrideRoot(forest []*Node, name string) {
	if len(forest) == 0 || name == "" {
		return
	}
	forest[0].Name = name
	forest[0].Path = name
}

func build(lines []string) []*Node {
	var forest []*Node
	stack := []frame{{level: -1, children: &forest}}

	// An unindented first line names the root; otherwise fall back to the
	// placeholder and treat every line as a descendant.
	rootName := DefaultRootName
	if len(lines) > 0 && !startsWithIndent(lines[0]) {
		rootName = strings.TrimSuffix(strings.TrimSpace(lines[0]), "/")
		lines = lines[1:]
	}

	root := &Node{Name: rootName, Path: rootName, Level: 0}
	forest = append(forest, root)
	stack = append(stack, frame{level: 0, path: rootName, children: &root.Children})

	for _, line := range lines {
		// A trailing `tree`-style summary ("N directories, M files") is
		// not a node.
		if isTreeSummary(line) {
			continue
		}
		info, ok := classify(line)
		if !ok {
			continue
		}
		level := info.level + 1 // offset for the implicit root

		// Find the nearest still-open ancestor strictly above the target
		// level; the sentinel and the root frame are never popped.
		for len(stack) > 2 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]

		// The heuristic target drives frame popping only; the node itself
		// records its true depth so that a child is always exactly one
		// level below its parent.
		node := &Node{
			Name:    info.name,
			Path:    path.Join(parent.path, info.name),
			IsFile:  info.isFile,
			Level:   len(stack) - 1,
			Comment: info.comment,
		}
		*parent.children = append(*parent.children, node)

		// Only directories open a frame: a line indented deeper than a
		// file attaches to the enclosing directory instead.
		if !node.IsFile {
			stack = append(stack, frame{level: level, path: node.Path, children: &node.Children})
		}
	}

	return forest
}

// isTreeSummary matches the closing line `tree` itself prints.
func isTreeSummary(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	return (strings.Contains(s, "directories") || strings.Contains(s, "directory")) &&
		(strings.Contains(s, "files") || strings.Contains(s, "file"))
}
