package model

// Document represents the questions converted from one GIFT source
type Document struct {
	// Source is the file name or a caller-supplied label for the input
	Source    string
	Questions []Question
}

// NewDocument creates a new empty document
func NewDocument(source string) *Document {
	return &Document{
		Source:    source,
		Questions: make([]Question, 0),
	}
}

// AddQuestion appends a question, keeping source order
func (d *Document) AddQuestion(q Question) {
	d.Questions = append(d.Questions, q)
}

// QuestionCount returns the total number of questions
func (d *Document) QuestionCount() int {
	return len(d.Questions)
}

// Categories returns the distinct categories in order of first appearance
func (d *Document) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, q := range d.Questions {
		if seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		categories = append(categories, q.Category)
	}
	return categories
}

// MaxAnswers returns the largest answer count of any question. Tabular
// writers use it to size header rows.
func (d *Document) MaxAnswers() int {
	max := 0
	for _, q := range d.Questions {
		if len(q.Answers) > max {
			max = len(q.Answers)
		}
	}
	return max
}
