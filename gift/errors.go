package gift

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBlock indicates a block without the comment, category and
	// question lines.
	ErrShortBlock = errors.New("block too short")

	// ErrMissingQuestionMarker indicates the question line did not match
	// the ::::[choice] pattern.
	ErrMissingQuestionMarker = errors.New("missing question marker")

	// ErrNoAnswers indicates no line in the block matched the answer pattern.
	ErrNoAnswers = errors.New("no answers")

	// ErrNoCorrectAnswer indicates no answer was marked with "=".
	ErrNoCorrectAnswer = errors.New("no correct answer")

	// ErrUnsupportedAnswerIndex indicates the correct answer sits at a
	// position that has no letter under the active letter policy.
	ErrUnsupportedAnswerIndex = errors.New("unsupported correct-answer index")
)

// ParseError reports a block that could not be turned into a question.
type ParseError struct {
	// Block is the 0-based index of the block in the document.
	Block int
	// Line is the 1-based source line the error refers to.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gift: block %d (line %d): %v", e.Block, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
