package giftcsv

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/giftcsv/export"
	"github.com/tsawler/giftcsv/format"
	"github.com/tsawler/giftcsv/gift"
	"github.com/tsawler/giftcsv/internal/textenc"
	"github.com/tsawler/giftcsv/model"
)

// ErrUnsupportedInput is returned when the input is recognisably not GIFT,
// for example a CSV or YAML file.
var ErrUnsupportedInput = errors.New("unsupported input format")

// Converter provides a fluent interface for converting GIFT documents.
// Each configuration method returns a new Converter instance, so a
// configured Converter can be shared and reused.
type Converter struct {
	// Source, shared with every derived Converter
	in *input

	// source labels the document in errors, YAML output and the database sink
	source string

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	newConv := *c
	newConv.options = c.options.clone()
	return &newConv
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Encoding sets the input charset by WHATWG label ("utf-8", "windows-1252",
// "iso-8859-15", ...). "auto" detects a byte order mark, then UTF-8, and
// falls back to Windows-1252. An unknown label fails the terminal operation.
//
// Example:
//
//	questions, _, err := giftcsv.Open("legacy.gift").Encoding("latin1").Questions()
func (c *Converter) Encoding(charset string) *Converter {
	newConv := c.clone()
	newConv.options.encoding = charset
	if charset != "" && !strings.EqualFold(charset, textenc.Auto) {
		if _, err := textenc.Lookup(charset); err != nil && newConv.err == nil {
			newConv.err = err
		}
	}
	return newConv
}

// ExtendedLetters allows the correct answer to sit past the third option,
// producing letters up to "Z". Without it such questions fail with
// gift.ErrUnsupportedAnswerIndex.
func (c *Converter) ExtendedLetters() *Converter {
	newConv := c.clone()
	newConv.options.extendedLetters = true
	return newConv
}

// Source sets the label used for the document in errors and outputs.
// It defaults to the file name for Open and is empty otherwise.
func (c *Converter) Source(label string) *Converter {
	newConv := c.clone()
	newConv.source = label
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Blocks returns the raw question blocks of the document in source order.
func (c *Converter) Blocks() ([]model.Block, error) {
	text, err := c.load()
	if err != nil {
		return nil, err
	}
	return gift.Blocks(text), nil
}

// Questions converts the document and returns its questions in source order.
// The first block that cannot be extracted stops the conversion; its error
// wraps a *gift.ParseError.
//
// Example:
//
//	questions, warnings, err := giftcsv.Open("quiz.gift").Questions()
func (c *Converter) Questions() ([]model.Question, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return nil, warnings, err
	}
	return doc.Questions, warnings, nil
}

// Document converts the document and returns it with its source label.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	text, err := c.load()
	if err != nil {
		return nil, nil, err
	}

	var extractor *gift.Extractor
	if c.options.extendedLetters {
		extractor = gift.NewExtractor(gift.WithExtendedLetters())
	} else {
		extractor = gift.NewExtractor()
	}

	var warnings []Warning
	doc := model.NewDocument(c.source)
	chunker := gift.NewChunker(text)

	for block := range chunker.All() {
		q, err := extractor.Extract(block)
		if err != nil {
			return nil, warnings, c.wrap(err)
		}
		doc.AddQuestion(q)
	}

	if n, line := chunker.Remaining(); n > 0 {
		warnings = append(warnings, Warning{
			Line:    line,
			Message: fmt.Sprintf("%d non-empty lines were not read; blocks must be separated by a single blank line", n),
		})
	}
	if doc.QuestionCount() == 0 {
		warnings = append(warnings, Warning{Message: "no questions found"})
	}

	return doc, warnings, nil
}

// WriteTo converts the document and writes it to w using config.
//
// Example:
//
//	_, err := giftcsv.Open("quiz.gift").WriteTo(os.Stdout, export.CSVExportConfig())
func (c *Converter) WriteTo(w io.Writer, config export.ExportConfig) ([]Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return warnings, err
	}

	if config.Source == "" {
		config.Source = doc.Source
	}
	if err := export.NewExporterWithConfig(config).Export(doc.Questions, w); err != nil {
		return warnings, fmt.Errorf("writing output: %w", err)
	}
	return warnings, nil
}

// ToFile converts the document and writes it to path. The output format
// follows the file extension; unknown extensions and .gift/.txt get CSV.
// Nothing is written when conversion fails.
//
// Example:
//
//	_, err := giftcsv.Open("quiz.gift").ToFile("quiz.csv")
func (c *Converter) ToFile(path string) ([]Warning, error) {
	f := format.Detect(path)
	if f == format.Unknown || f == format.GIFT {
		f = format.CSV
	}
	config, err := export.ConfigFor(f)
	if err != nil {
		return nil, err
	}

	doc, warnings, err := c.Document()
	if err != nil {
		return warnings, err
	}

	config.Source = doc.Source
	if err := export.NewExporterWithConfig(config).ExportToFile(doc.Questions, path); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// load decodes the shared input with this Converter's options.
func (c *Converter) load() (string, error) {
	if c.err != nil {
		return "", c.err
	}

	if c.in == nil {
		return "", errors.New("no input specified")
	}
	data, err := c.in.bytes()
	if err != nil {
		return "", err
	}

	if f := format.Resolve(c.in.filename, data); f != format.GIFT && f != format.Unknown {
		return "", c.wrap(fmt.Errorf("%w: %s", ErrUnsupportedInput, f))
	}

	text, err := textenc.Decode(data, c.options.encoding)
	if err != nil {
		return "", c.wrap(err)
	}
	return text, nil
}

func (c *Converter) wrap(err error) error {
	if c.source == "" {
		return err
	}
	return fmt.Errorf("%s: %w", c.source, err)
}
