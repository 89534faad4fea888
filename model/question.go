package model

// Question is a single multiple-choice question extracted from a block.
type Question struct {
	// ID is the identifier from the "// question: <id>" comment line, if any.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Category is the name declared on the $CATEGORY: line.
	Category string `json:"category" yaml:"category"`

	// Text is the question prompt with entity references decoded.
	Text string `json:"text" yaml:"text"`

	// Answers holds the offered options in source order.
	Answers []string `json:"answers" yaml:"answers"`

	// CorrectAnswer is the letter ("A", "B", ...) of the correct option.
	CorrectAnswer string `json:"correct_answer" yaml:"correct_answer"`
}

// CorrectIndex returns the zero-based index in Answers named by
// CorrectAnswer, or -1 if the letter is missing or out of range.
func (q Question) CorrectIndex() int {
	if len(q.CorrectAnswer) != 1 {
		return -1
	}
	idx := int(q.CorrectAnswer[0] - 'A')
	if idx < 0 || idx >= len(q.Answers) {
		return -1
	}
	return idx
}

// Row returns the tabular form of the question: category, text, each
// answer in order, then the correct-answer letter. The column count varies
// with the number of answers.
func (q Question) Row() []string {
	row := make([]string, 0, len(q.Answers)+3)
	row = append(row, q.Category, q.Text)
	row = append(row, q.Answers...)
	row = append(row, q.CorrectAnswer)
	return row
}
