package tree

// Node is one filesystem entry reconstructed from the input diagram:
// a file or a directory at a given depth, with its ordered children.
type Node struct {
	Name     string  // bare segment name, no trailing slash, no comment
	Path     string  // logical path joined with '/'; the root's path is its name
	IsFile   bool    // heuristic: name contains a '.' and has no trailing slash
	Level    int     // depth relative to the root (root = 0)
	Comment  string  // trailing '# ...' annotation, may be empty
	Children []*Node // source order; always empty for files
}

// Flatten returns the forest in depth-first source order.
func Flatten(forest []*Node) []*Node {
	var out []*Node
	var walk func([]*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, n)
			walk(n.Children)
		}
	}
	walk(forest)
	return out
}
