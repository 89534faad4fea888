// Package gift reads multiple-choice questions from documents written in the
// GIFT quiz markup used by e-learning platforms.
//
// Parsing happens in two steps. A [Chunker] splits the document into
// blank-line separated blocks, decoding HTML entity references line by line:
//
//	c := gift.NewChunker(doc)
//	for block, ok := c.Next(); ok; block, ok = c.Next() {
//	    q, err := gift.Extract(block)
//	    ...
//	}
//
// [Extract] then maps each block to a [model.Question]. A block is expected
// to follow a fixed layout:
//
//	// question: 208050
//	$CATEGORY:Insurance basics
//	::::[choice]Is the premium paid to the agent considered paid? [B0_135_04]{
//		~False#
//		=True#
//	}
//
// Line 0 is a comment, line 1 declares the category, line 2 holds the
// question text and the following lines hold answers. Answers marked with
// "=" are correct, "~" incorrect; anything after "#" is feedback and is
// dropped.
//
// # Answer Letters
//
// The correct answer is reported as a letter by its position among the
// matched answers. By default only "A", "B" and "C" are produced and a
// correct answer in a later position fails with [ErrUnsupportedAnswerIndex].
// [WithExtendedLetters] lifts the cap to "Z".
package gift
