// Package render re-emits a parsed forest as canonical ASCII-tree text.
package render

import (
	"strings"

	"github.com/harsh1t3/tree-converter/internal/tree"
)

const (
	dirIcon  = "📁"
	fileIcon = "📄"
)

// Options controls the rendered text.
type Options struct {
	// Icons prefixes every entry with a 📁/📄 glyph. Plain output (no
	// icons) round-trips through the parser: re-parsing it reproduces an
	// equivalent hierarchy.
	Icons bool
}

// Tree renders the forest with box-drawing connectors. Roots are printed
// bare, the way `tree` prints its argument; descendants get a tee or corner
// connector depending on whether they are the last child, and deeper levels
// inherit a vertical-bar or blank continuation from their ancestors.
func Tree(forest []*tree.Node, opts Options) string {
	var b strings.Builder
	for _, root := range forest {
		if opts.Icons {
			b.WriteString(dirIcon + " ")
		}
		b.WriteString(root.Name)
		if root.Comment != "" {
			b.WriteString("  # " + root.Comment)
		}
		b.WriteByte('\n')
		children(&b, root.Children, "", opts)
	}
	return b.String()
}

func children(b *strings.Builder, nodes []*tree.Node, indent string, opts Options) {
	for i, n := range nodes {
		last := i == len(nodes)-1

		connector := "├── "
		if last {
			connector = "└── "
		}
		b.WriteString(indent + connector)

		if opts.Icons {
			icon := dirIcon
			if n.IsFile {
				icon = fileIcon
			}
			b.WriteString(icon + " ")
		}
		b.WriteString(n.Name)
		if n.Comment != "" {
			b.WriteString("  # " + n.Comment)
		}
		b.WriteByte('\n')

		if len(n.Children) > 0 {
			cont := "│   "
			if last {
				cont = "    "
			}
			children(b, n.Children, indent+cont, opts)
		}
	}
}
