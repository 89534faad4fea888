package gift

import (
	"strings"
	"unicode"

	"github.com/tsawler/giftcsv/model"
)

const (
	categoryLine = 1
	questionLine = 2
	firstAnswer  = 3
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithExtendedLetters allows correct answers beyond the third position,
// producing letters up to "Z".
func WithExtendedLetters() Option {
	return func(e *Extractor) {
		e.extendedLetters = true
	}
}

// Extractor maps blocks to questions. It holds no per-block state and is
// safe for concurrent use.
type Extractor struct {
	extendedLetters bool
}

// NewExtractor creates an extractor with the given options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = NewExtractor()

// Extract maps a block to a question using the default A/B/C letter policy.
func Extract(block model.Block) (model.Question, error) {
	return defaultExtractor.Extract(block)
}

// Extract maps a block to a question.
//
// Answer lines that do not match the answer pattern are skipped and do not
// take a position, so the correct-answer letter always points into
// Question.Answers. When several answers are marked correct the last one wins.
func (e *Extractor) Extract(block model.Block) (model.Question, error) {
	if block.Len() < firstAnswer {
		return model.Question{}, e.fail(block, 0, ErrShortBlock)
	}

	q := model.Question{
		ID:       questionID(block.Line(0)),
		Category: strings.TrimPrefix(block.Line(categoryLine), categoryPrefix),
	}

	m := questionRe.FindStringSubmatch(block.Line(questionLine))
	if m == nil {
		return model.Question{}, e.fail(block, questionLine, ErrMissingQuestionMarker)
	}
	q.Text = unescape(m[1])

	correct, correctLine := -1, 0
	for i := firstAnswer; i < block.Len(); i++ {
		line := block.Lines[i]
		if len(line) <= 1 {
			continue
		}
		am := answerRe.FindStringSubmatch(line)
		if am == nil {
			continue
		}
		if am[1] == correctMarker {
			correct, correctLine = len(q.Answers), i
		}
		q.Answers = append(q.Answers, unescape(strings.TrimRightFunc(am[2], unicode.IsSpace)))
	}

	if len(q.Answers) == 0 {
		return model.Question{}, e.fail(block, firstAnswer, ErrNoAnswers)
	}
	if correct < 0 {
		return model.Question{}, e.fail(block, firstAnswer, ErrNoCorrectAnswer)
	}

	letter, err := Letter(correct, e.extendedLetters)
	if err != nil {
		return model.Question{}, e.fail(block, correctLine, err)
	}
	q.CorrectAnswer = letter

	return q, nil
}

func (e *Extractor) fail(block model.Block, line int, err error) error {
	return &ParseError{
		Block: block.Index,
		Line:  block.SourceLine(line),
		Err:   err,
	}
}

func questionID(comment string) string {
	m := idRe.FindStringSubmatch(comment)
	if m == nil {
		return ""
	}
	return m[1]
}
