package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/giftcsv/format"
	"github.com/tsawler/giftcsv/model"
)

// ExportConfig holds configuration options for export
type ExportConfig struct {
	// Format specifies the export format
	Format format.Format

	// Delimiter specifies the field delimiter for CSV export (default: comma)
	Delimiter rune

	// IncludeHeader writes a header row in CSV/TSV exports
	IncludeHeader bool

	// UseCRLF ends CSV/TSV rows with \r\n, as spreadsheet tools expect on Windows
	UseCRLF bool

	// Source names the converted document in YAML exports
	Source string
}

// DefaultExportConfig returns the plain CSV layout: comma separated, no header
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:        format.CSV,
		Delimiter:     ',',
		IncludeHeader: false,
		UseCRLF:       false,
	}
}

// CSVExportConfig returns config for CSV export
func CSVExportConfig() ExportConfig {
	return DefaultExportConfig()
}

// TSVExportConfig returns config for TSV export
func TSVExportConfig() ExportConfig {
	config := DefaultExportConfig()
	config.Format = format.TSV
	config.Delimiter = '\t'
	return config
}

// JSONLExportConfig returns config for JSON Lines export
func JSONLExportConfig() ExportConfig {
	config := DefaultExportConfig()
	config.Format = format.JSONL
	return config
}

// YAMLExportConfig returns config for YAML export
func YAMLExportConfig() ExportConfig {
	config := DefaultExportConfig()
	config.Format = format.YAML
	return config
}

// ConfigFor returns the default config for the given format
func ConfigFor(f format.Format) (ExportConfig, error) {
	switch f {
	case format.CSV:
		return CSVExportConfig(), nil
	case format.TSV:
		return TSVExportConfig(), nil
	case format.JSONL:
		return JSONLExportConfig(), nil
	case format.YAML:
		return YAMLExportConfig(), nil
	default:
		return ExportConfig{}, fmt.Errorf("unsupported export format: %v", f)
	}
}

// Exporter handles exporting questions to various formats
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultExportConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	if config.Delimiter == 0 {
		config.Delimiter = ','
	}
	return &Exporter{
		config: config,
	}
}

// Config returns the exporter configuration
func (e *Exporter) Config() ExportConfig {
	return e.config
}

// Export exports questions to the specified writer
func (e *Exporter) Export(questions []model.Question, w io.Writer) error {
	switch e.config.Format {
	case format.CSV, format.TSV:
		return e.exportCSV(questions, w)
	case format.JSONL:
		return e.exportJSONL(questions, w)
	case format.YAML:
		return e.exportYAML(questions, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile exports questions to a file
func (e *Exporter) ExportToFile(questions []model.Question, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := e.Export(questions, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportToString exports questions to a string
func (e *Exporter) ExportToString(questions []model.Question) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(questions, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportCSV exports questions as CSV or TSV
func (e *Exporter) exportCSV(questions []model.Question, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.config.Delimiter
	csvWriter.UseCRLF = e.config.UseCRLF

	width := 0
	if e.config.IncludeHeader {
		width = maxAnswers(questions)
		if err := csvWriter.Write(headerRow(width)); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for i, q := range questions {
		if err := csvWriter.Write(paddedRow(q, width)); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// exportJSONL exports questions as JSON Lines (one JSON object per line)
func (e *Exporter) exportJSONL(questions []model.Question, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	for i, q := range questions {
		if err := encoder.Encode(q); err != nil {
			return fmt.Errorf("encoding question %d: %w", i, err)
		}
	}

	return nil
}

type yamlDocument struct {
	Source    string           `yaml:"source,omitempty"`
	Questions []model.Question `yaml:"questions"`
}

// exportYAML exports questions as a single YAML document
func (e *Exporter) exportYAML(questions []model.Question, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	doc := yamlDocument{Source: e.config.Source, Questions: questions}
	if doc.Questions == nil {
		doc.Questions = []model.Question{}
	}
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}

func maxAnswers(questions []model.Question) int {
	max := 0
	for _, q := range questions {
		if len(q.Answers) > max {
			max = len(q.Answers)
		}
	}
	return max
}

func headerRow(answers int) []string {
	header := []string{"category", "text"}
	for i := 1; i <= answers; i++ {
		header = append(header, fmt.Sprintf("answer_%d", i))
	}
	return append(header, "correct_answer")
}

// paddedRow returns the question row with empty answer cells added up to
// width. A width of 0 leaves the row ragged.
func paddedRow(q model.Question, width int) []string {
	if len(q.Answers) >= width {
		return q.Row()
	}
	padded := q
	padded.Answers = make([]string, width)
	copy(padded.Answers, q.Answers)
	return padded.Row()
}
