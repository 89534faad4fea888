package giftcsv

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue found during conversion. Conversion
// succeeded but the output may be incomplete.
type Warning struct {
	// Line is the 1-based source line the warning refers to, or 0.
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
