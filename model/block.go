package model

import "strings"

// Block is the ordered group of non-empty lines that make up one question
// entry, bounded by blank lines in the source.
type Block struct {
	// Lines holds the entity-decoded lines of the block. Every line is non-empty.
	Lines []string

	// StartLine is the 1-based line number of Lines[0] in the source document.
	StartLine int

	// Index is the 0-based position of the block in the document.
	Index int
}

// Len returns the number of lines in the block.
func (b Block) Len() int {
	return len(b.Lines)
}

// Line returns line i of the block, or "" when i is out of range.
func (b Block) Line(i int) string {
	if i < 0 || i >= len(b.Lines) {
		return ""
	}
	return b.Lines[i]
}

// SourceLine maps an index into Lines to its 1-based line number in the source.
func (b Block) SourceLine(i int) int {
	return b.StartLine + i
}

// String returns the block lines joined with newlines.
func (b Block) String() string {
	return strings.Join(b.Lines, "\n")
}
