package gift

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/giftcsv/model"
)

func block(lines ...string) model.Block {
	return model.Block{Lines: lines, StartLine: 1}
}

func TestExtractSample(t *testing.T) {
	blocks := Blocks(loadSample(t))
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	q, err := Extract(blocks[0])
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if q.Category != "FP_B0_135_esigenze dei consumatori" {
		t.Errorf("Category = %q", q.Category)
	}
	wantText := "Il premio pagato in buona fede all'intermediario o ad un suo collaboratore si considera come pagato direttamente all'impresa di assicurazione."
	if q.Text != wantText {
		t.Errorf("Text = %q, want %q", q.Text, wantText)
	}
	wantAnswers := []string{
		"Falso",
		"Vero, ma solo provato con il pagamento presso i locali dell'intermediario",
		"Vero",
	}
	if !reflect.DeepEqual(q.Answers, wantAnswers) {
		t.Errorf("Answers = %q, want %q", q.Answers, wantAnswers)
	}
	if q.CorrectAnswer != "C" {
		t.Errorf("CorrectAnswer = %q, want C", q.CorrectAnswer)
	}
	if q.ID != "208050" {
		t.Errorf("ID = %q, want 208050", q.ID)
	}
}

func TestExtractEscapedColon(t *testing.T) {
	blocks := Blocks(loadSample(t))

	q, err := Extract(blocks[1])
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if q.Text != "Per broker si indicano" {
		t.Errorf("Text = %q, want %q", q.Text, "Per broker si indicano")
	}
	if q.Category != "00A8_035_Intermediazione" {
		t.Errorf("Category = %q", q.Category)
	}
	if q.CorrectAnswer != "A" {
		t.Errorf("CorrectAnswer = %q, want A", q.CorrectAnswer)
	}
	if !strings.HasSuffix(q.Answers[2], "dell'Autorità di vigilanza") {
		t.Errorf("entity not decoded in answer: %q", q.Answers[2])
	}
}

func TestExtractDecodedEntities(t *testing.T) {
	blocks := Blocks(loadSample(t))

	q, err := Extract(blocks[2])
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	for _, a := range q.Answers {
		if strings.Contains(a, "&") {
			t.Errorf("answer %q still holds an entity reference", a)
		}
		if !strings.Contains(a, "l’incarico") || !strings.Contains(a, "più") {
			t.Errorf("answer %q not decoded", a)
		}
	}
}

func TestExtractCorrectLetterByPosition(t *testing.T) {
	for i, want := range []string{"A", "B", "C"} {
		lines := []string{"// question: 1", "$CATEGORY:c", "::::[choice]Q? [t]{"}
		for j := 0; j < 3; j++ {
			marker := "~"
			if j == i {
				marker = "="
			}
			lines = append(lines, "\t"+marker+"answer#")
		}
		lines = append(lines, "}")

		q, err := Extract(block(lines...))
		if err != nil {
			t.Fatalf("correct at %d: Extract() error: %v", i, err)
		}
		if q.CorrectAnswer != want {
			t.Errorf("correct at %d: CorrectAnswer = %q, want %q", i, q.CorrectAnswer, want)
		}
	}
}

func TestExtractAnswerLines(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantAnswers []string
		wantCorrect string
	}{
		{
			name:        "feedback after hash is dropped",
			lines:       []string{"\t=Yes# because", "\t~No#wrong"},
			wantAnswers: []string{"Yes", "No"},
			wantCorrect: "A",
		},
		{
			name:        "hash is optional",
			lines:       []string{"~No", "=Yes   "},
			wantAnswers: []string{"No", "Yes"},
			wantCorrect: "B",
		},
		{
			name:        "escaped hash stays in the text",
			lines:       []string{"\t=C\\# language#", "\t~Go#"},
			wantAnswers: []string{"C# language", "Go"},
			wantCorrect: "A",
		},
		{
			name:        "unmatched line takes no position",
			lines:       []string{"\t~one#", "\tnot an answer", "\t=two#", "\t~three#"},
			wantAnswers: []string{"one", "two", "three"},
			wantCorrect: "B",
		},
		{
			name:        "short lines are skipped",
			lines:       []string{"\t~one#", "x", "\t=two#", "}"},
			wantAnswers: []string{"one", "two"},
			wantCorrect: "B",
		},
		{
			name:        "trailing backslash is kept",
			lines:       []string{"\t=C:\\", "\t~D:#"},
			wantAnswers: []string{"C:\\", "D:"},
			wantCorrect: "A",
		},
		{
			name:        "last correct marker wins",
			lines:       []string{"\t=one#", "\t=two#", "\t~three#"},
			wantAnswers: []string{"one", "two", "three"},
			wantCorrect: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := append([]string{"//", "$CATEGORY:c", "::::[choice]Q [t]{"}, tt.lines...)
			q, err := Extract(block(lines...))
			if err != nil {
				t.Fatalf("Extract() error: %v", err)
			}
			if !reflect.DeepEqual(q.Answers, tt.wantAnswers) {
				t.Errorf("Answers = %q, want %q", q.Answers, tt.wantAnswers)
			}
			if q.CorrectAnswer != tt.wantCorrect {
				t.Errorf("CorrectAnswer = %q, want %q", q.CorrectAnswer, tt.wantCorrect)
			}
		})
	}
}

func TestExtractCategoryPrefix(t *testing.T) {
	q, err := Extract(block("//", "$CATEGORY:$course$/top/Quiz", "::::[choice]Q [t]{", "=a#"))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if q.Category != "$course$/top/Quiz" {
		t.Errorf("Category = %q", q.Category)
	}
	if q.ID != "" {
		t.Errorf("ID = %q, want empty for a bare comment", q.ID)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name     string
		block    model.Block
		wantErr  error
		wantLine int
	}{
		{
			name:     "short block",
			block:    block("//", "$CATEGORY:c"),
			wantErr:  ErrShortBlock,
			wantLine: 1,
		},
		{
			name:     "missing question marker",
			block:    block("//", "$CATEGORY:c", "::[essay]Describe {", "=a#"),
			wantErr:  ErrMissingQuestionMarker,
			wantLine: 3,
		},
		{
			name:     "no answers",
			block:    block("//", "$CATEGORY:c", "::::[choice]Q [t]{", "}"),
			wantErr:  ErrNoAnswers,
			wantLine: 4,
		},
		{
			name:     "no correct answer",
			block:    block("//", "$CATEGORY:c", "::::[choice]Q [t]{", "~a#", "~b#"),
			wantErr:  ErrNoCorrectAnswer,
			wantLine: 4,
		},
		{
			name:     "fourth answer correct",
			block:    block("//", "$CATEGORY:c", "::::[choice]Q [t]{", "~a#", "~b#", "~c#", "=d#", "}"),
			wantErr:  ErrUnsupportedAnswerIndex,
			wantLine: 7,
		},
		{
			name:     "unsupported index after an unmatched line",
			block:    block("//", "$CATEGORY:c", "::::[choice]Q [t]{", "~a#", "~b#", "junk", "~c#", "=d#", "}"),
			wantErr:  ErrUnsupportedAnswerIndex,
			wantLine: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.block)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Extract() error = %v, want %v", err, tt.wantErr)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", pe.Line, tt.wantLine)
			}
		})
	}
}

func TestExtractExtendedLetters(t *testing.T) {
	b := block("//", "$CATEGORY:c", "::::[choice]Q [t]{", "~a#", "~b#", "~c#", "=d#", "}")

	q, err := NewExtractor(WithExtendedLetters()).Extract(b)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if q.CorrectAnswer != "D" {
		t.Errorf("CorrectAnswer = %q, want D", q.CorrectAnswer)
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Block: 2, Line: 17, Err: ErrMissingQuestionMarker}
	want := "gift: block 2 (line 17): missing question marker"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		index    int
		extended bool
		want     string
		wantErr  bool
	}{
		{0, false, "A", false},
		{2, false, "C", false},
		{3, false, "", true},
		{-1, false, "", true},
		{3, true, "D", false},
		{25, true, "Z", false},
		{26, true, "", true},
	}

	for _, tt := range tests {
		got, err := Letter(tt.index, tt.extended)
		if (err != nil) != tt.wantErr {
			t.Errorf("Letter(%d, %v) error = %v, wantErr %v", tt.index, tt.extended, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnsupportedAnswerIndex) {
			t.Errorf("Letter(%d, %v) error = %v, want ErrUnsupportedAnswerIndex", tt.index, tt.extended, err)
		}
		if got != tt.want {
			t.Errorf("Letter(%d, %v) = %q, want %q", tt.index, tt.extended, got, tt.want)
		}
	}
}
