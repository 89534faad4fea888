// Package export writes converted questions in tabular and structured formats.
//
// The default configuration produces the plain CSV layout: no header row and
// one row per question with the columns
//
//	category, text, answer-1, ..., answer-N, correct-letter
//
// Rows are ragged when questions have different answer counts.
//
//	exporter := export.NewExporter()
//	err := exporter.Export(questions, os.Stdout)
//
// # Formats
//
//   - CSV and TSV via [CSVExportConfig] and [TSVExportConfig]
//   - JSON Lines via [JSONLExportConfig], one question object per line
//   - YAML via [YAMLExportConfig], a "questions" list
//
// When IncludeHeader is set for CSV or TSV, answer columns are padded to
// the widest question so the correct-letter column lines up.
package export
