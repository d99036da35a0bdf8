package tree

import (
	"strings"
	"unicode"
)

// lineInfo is the result of classifying one raw input line.
type lineInfo struct {
	level   int
	name    string
	isFile  bool
	comment string
}

// isIndentRune reports whether r belongs to the indentation run:
// whitespace or one of the four box-drawing connector glyphs.
func isIndentRune(r rune) bool {
	return r == '│' || r == '├' || r == '└' || r == '─' || unicode.IsSpace(r)
}

// startsWithIndent reports whether the line opens with an indentation token.
// An unindented first line names the root instead of carrying a node.
func startsWithIndent(line string) bool {
	for _, r := range line {
		return isIndentRune(r)
	}
	return false
}

// classify splits one raw line into level, name and trailing comment.
// Reports false for lines that yield no node: blank lines, or lines with
// nothing left once the indentation run and the comment are stripped (a
// comment attached to a blank name is discarded with it).
func classify(line string) (lineInfo, bool) {
	if strings.TrimSpace(line) == "" {
		return lineInfo{}, false
	}

	indent := leadingIndent(line)

	content, comment := line, ""
	if i := strings.IndexByte(line, '#'); i >= 0 {
		content, comment = line[:i], strings.TrimSpace(line[i+1:])
	}

	name := strings.TrimSpace(strings.TrimLeftFunc(content, isIndentRune))
	name = strings.TrimSuffix(name, "/")
	if name == "" {
		return lineInfo{}, false
	}

	// Heuristic: a dot means file. Directories like "v1.2" are knowingly
	// misclassified; callers rely on this exact behavior.
	isFile := strings.Contains(name, ".") && !strings.HasSuffix(name, "/")

	return lineInfo{
		level:   countLevel(indent),
		name:    name,
		isFile:  isFile,
		comment: comment,
	}, true
}

// leadingIndent returns the contiguous prefix of indentation tokens.
func leadingIndent(line string) string {
	if i := strings.IndexFunc(line, func(r rune) bool { return !isIndentRune(r) }); i >= 0 {
		return line[:i]
	}
	return line
}

// countLevel approximates nesting depth from the indentation run: each
// vertical bar, tee or elbow glyph counts one level, as does every group of
// four consecutive spaces. The sum tolerates mixed styles (pure spaces, pure
// connectors, or both) but can miscount irregular widths; see DESIGN.md.
func countLevel(indent string) int {
	level, spaces := 0, 0
	for _, r := range indent {
		switch r {
		case '│', '├', '└':
			level++
			spaces = 0
		case ' ':
			spaces++
			if spaces == 4 {
				level++
				spaces = 0
			}
		default: // '─', tabs and any other whitespace break a space group
			spaces = 0
		}
	}
	return level
}
