package gift

import "fmt"

const (
	strictLetters   = 3
	extendedLetters = 26
)

// Letter maps a zero-based answer index to its letter. Without extended
// letters only indices 0, 1 and 2 are accepted.
func Letter(index int, extended bool) (string, error) {
	limit := strictLetters
	if extended {
		limit = extendedLetters
	}
	if index < 0 || index >= limit {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedAnswerIndex, index)
	}
	return string(rune('A' + index)), nil
}
