package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	forest := ParseString(Sample)
	require.Len(t, forest, 1, "exactly one root")

	root := forest[0]
	assert.Equal(t, "my-project", root.Name)
	assert.Equal(t, "my-project", root.Path)
	assert.Equal(t, 0, root.Level)
	assert.False(t, root.IsFile)
	require.Len(t, root.Children, 3)

	readme := root.Children[0]
	assert.Equal(t, "README.md", readme.Name)
	assert.True(t, readme.IsFile)
	assert.Equal(t, "Project overview", readme.Comment)
	assert.Equal(t, "my-project/README.md", readme.Path)

	src := root.Children[1]
	require.Equal(t, "src", src.Name)
	require.False(t, src.IsFile)
	require.Len(t, src.Children, 2)
	assert.Equal(t, "main.py", src.Children[0].Name)
	assert.Equal(t, "Entry point", src.Children[0].Comment)
	assert.Equal(t, "utils.py", src.Children[1].Name)
	assert.Equal(t, "Helper functions", src.Children[1].Comment)
	assert.Equal(t, "my-project/src/main.py", src.Children[0].Path)

	tests := root.Children[2]
	require.Equal(t, "tests", tests.Name)
	require.False(t, tests.IsFile)
	require.Len(t, tests.Children, 1)
	assert.Equal(t, "test_main.py", tests.Children[0].Name)
	assert.Equal(t, "Unit tests", tests.Children[0].Comment)

	// The subdirectories carry three file nodes between them.
	files := 0
	for _, n := range Flatten(forest) {
		if n.IsFile && n.Level == 2 {
			files++
		}
	}
	assert.Equal(t, 3, files)
}

func TestParseLevelsAreConsecutive(t *testing.T) {
	forest := ParseString(Sample)

	var check func(n *Node)
	check = func(n *Node) {
		for _, c := range n.Children {
			assert.Equal(t, n.Level+1, c.Level, "child %s of %s", c.Name, n.Name)
			check(c)
		}
	}
	require.Len(t, forest, 1)
	assert.Equal(t, 0, forest[0].Level)
	check(forest[0])
}

func TestParseDefaultRoot(t *testing.T) {
	// An indented first line cannot name the root.
	forest := ParseString("├── a\n├── b.txt\n")
	require.Len(t, forest, 1)
	assert.Equal(t, DefaultRootName, forest[0].Name)
	require.Len(t, forest[0].Children, 2)
}

func TestParseRootTrailingSlash(t *testing.T) {
	forest := ParseString("proj/\n├── a\n")
	assert.Equal(t, "proj", forest[0].Name)
}

func TestParseEmptyInputStillHasRoot(t *testing.T) {
	forest := ParseString("")
	require.Len(t, forest, 1)
	assert.Equal(t, DefaultRootName, forest[0].Name)
	assert.Empty(t, forest[0].Children)
}

func TestParseFileNeverGetsChildren(t *testing.T) {
	// notes.txt is a file; the deeper line after it becomes a sibling
	// attached to the enclosing directory, not a child of the file.
	input := `proj
├── docs
│   ├── notes.txt
│   │   └── orphan.md
└── done.txt`
	forest := ParseString(input)
	root := forest[0]
	require.Len(t, root.Children, 2)

	docs := root.Children[0]
	require.Equal(t, "docs", docs.Name)
	require.Len(t, docs.Children, 2)
	assert.Equal(t, "notes.txt", docs.Children[0].Name)
	assert.Empty(t, docs.Children[0].Children)
	assert.Equal(t, "orphan.md", docs.Children[1].Name)
}

func TestParsePlainSpaceIndentation(t *testing.T) {
	input := "proj\n    src\n        app.py\n    README.md"
	forest := ParseString(input)
	root := forest[0]
	require.Len(t, root.Children, 2)

	src := root.Children[0]
	require.Equal(t, "src", src.Name)
	require.Len(t, src.Children, 1)
	assert.Equal(t, "app.py", src.Children[0].Name)
	assert.Equal(t, "README.md", root.Children[1].Name)
}

func TestParseMixedIndentation(t *testing.T) {
	// Connectors and plain spaces in the same document.
	input := `proj
├── a
│   └── deep.txt
    └── b.txt`
	forest := ParseString(input)
	root := forest[0]
	require.Len(t, root.Children, 1)
	a := root.Children[0]
	require.Len(t, a.Children, 2)
	assert.Equal(t, "deep.txt", a.Children[0].Name)
	assert.Equal(t, "b.txt", a.Children[1].Name)
}

func TestParseSkipsTreeSummary(t *testing.T) {
	input := "proj\n├── src\n\n2 directories, 0 files\n"
	forest := ParseString(input)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "src", forest[0].Children[0].Name)
}

func TestParseBlankAndCommentOnlyLines(t *testing.T) {
	input := "proj\n\n├── src\n│   # stray comment, no name\n└── a.txt\n"
	forest := ParseString(input)
	root := forest[0]
	require.Len(t, root.Children, 2)
	assert.Equal(t, "src", root.Children[0].Name)
	assert.Empty(t, root.Children[0].Children, "comment-only line must not create a node")
	assert.Equal(t, "a.txt", root.Children[1].Name)
}

func TestOverrideRoot(t *testing.T) {
	forest := ParseString(Sample)
	OverrideRoot(forest, "renamed")
	assert.Equal(t, "renamed", forest[0].Name)
	assert.Equal(t, "renamed", forest[0].Path)

	OverrideRoot(forest, "")
	assert.Equal(t, "renamed", forest[0].Name, "empty override is a no-op")
}

func TestFlattenOrder(t *testing.T) {
	forest := ParseString(Sample)
	var names []string
	for _, n := range Flatten(forest) {
		names = append(names, n.Name)
	}
	assert.Equal(t,
		[]string{"my-project", "README.md", "src", "main.py", "utils.py", "tests", "test_main.py"},
		names)
}
