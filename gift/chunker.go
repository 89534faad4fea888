package gift

import (
	"iter"
	"strings"

	"github.com/tsawler/giftcsv/model"
)

// Chunker splits a GIFT document into blocks of consecutive non-empty lines.
//
// The cursor is owned by the Chunker and only moves forward; to scan a
// document again create a new Chunker. The first empty line found where a
// block should start ends the sequence.
type Chunker struct {
	lines  []string
	cursor int
	index  int
}

// NewChunker creates a chunker positioned at the start of doc.
func NewChunker(doc string) *Chunker {
	return &Chunker{
		lines: strings.Split(doc, "\n"),
	}
}

// Next returns the next block and true, or an empty block and false once
// the sequence has ended. A final block that is not followed by a blank
// line is still returned.
func (c *Chunker) Next() (model.Block, bool) {
	var collected []string
	for i := c.cursor; i < len(c.lines); i++ {
		if len(c.lines[i]) == 0 {
			break
		}
		collected = append(collected, DecodeEntities(c.lines[i]))
	}

	if len(collected) == 0 {
		return model.Block{}, false
	}

	block := model.Block{
		Lines:     collected,
		StartLine: c.cursor + 1,
		Index:     c.index,
	}

	// Skip the block and its single blank-line separator.
	c.cursor += len(collected) + 1
	c.index++

	return block, true
}

// All returns an iterator over the remaining blocks. It consumes the
// chunker in the same way as repeated calls to Next.
func (c *Chunker) All() iter.Seq[model.Block] {
	return func(yield func(model.Block) bool) {
		for {
			block, ok := c.Next()
			if !ok || !yield(block) {
				return
			}
		}
	}
}

// Remaining returns the number of non-empty lines at or after the cursor
// and the 1-based source line of the first of them, or 0 when there are
// none. After Next has returned false a non-zero count means content was
// left behind an extra blank line.
func (c *Chunker) Remaining() (n, line int) {
	for i := c.cursor; i < len(c.lines); i++ {
		if len(c.lines[i]) == 0 {
			continue
		}
		if n == 0 {
			line = i + 1
		}
		n++
	}
	return n, line
}

// Blocks chunks the whole document and returns the blocks in source order.
func Blocks(doc string) []model.Block {
	var blocks []model.Block
	for block := range NewChunker(doc).All() {
		blocks = append(blocks, block)
	}
	return blocks
}
