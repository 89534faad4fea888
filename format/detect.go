// Package format provides file format detection for quiz sources and outputs.
package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a supported quiz format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// GIFT indicates GIFT quiz markup.
	GIFT
	// CSV indicates comma-separated values, one question per row.
	CSV
	// TSV indicates tab-separated values, one question per row.
	TSV
	// JSONL indicates JSON Lines, one question object per line.
	JSONL
	// YAML indicates a YAML document with a list of questions.
	YAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case GIFT:
		return "gift"
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	case JSONL:
		return "jsonl"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case GIFT:
		return ".gift"
	case CSV:
		return ".csv"
	case TSV:
		return ".tsv"
	case JSONL:
		return ".jsonl"
	case YAML:
		return ".yaml"
	default:
		return ""
	}
}

// IsTabular reports whether the format stores one question per row.
func (f Format) IsTabular() bool {
	return f == CSV || f == TSV
}

// Outputs lists the formats questions can be written to.
func Outputs() []Format {
	return []Format{CSV, TSV, JSONL, YAML}
}

// Parse resolves a format name such as "csv" or "yaml".
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gift":
		return GIFT, nil
	case "csv":
		return CSV, nil
	case "tsv":
		return TSV, nil
	case "jsonl", "ndjson":
		return JSONL, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Unknown, fmt.Errorf("unknown format %q", name)
	}
}

// Detect determines file format from filename extension.
// Moodle exports GIFT files with a .txt extension, so .txt maps to GIFT.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".gift", ".txt":
		return GIFT
	case ".csv":
		return CSV
	case ".tsv", ".tab":
		return TSV
	case ".jsonl", ".ndjson":
		return JSONL
	case ".yaml", ".yml":
		return YAML
	default:
		return Unknown
	}
}

// DetectFromContent inspects the first non-blank line of data.
// Returns Unknown if the format cannot be determined from content alone.
func DetectFromContent(data []byte) Format {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	line := firstLine(data)
	if line == "" {
		return Unknown
	}

	switch {
	case strings.HasPrefix(line, "//"),
		strings.HasPrefix(line, "$CATEGORY:"),
		strings.HasPrefix(line, "::"):
		return GIFT
	case strings.HasPrefix(line, "{"):
		return JSONL
	case line == "---", strings.HasPrefix(line, "- category:"), strings.HasPrefix(line, "questions:"):
		return YAML
	}

	return Unknown
}

// Resolve picks the format for a path: the extension wins, then content.
func Resolve(filename string, data []byte) Format {
	if f := Detect(filename); f != Unknown {
		return f
	}
	return DetectFromContent(data)
}

func firstLine(data []byte) string {
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		if trimmed := strings.TrimSpace(string(line)); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
