package gift

import (
	"regexp"
	"strings"
)

const (
	categoryPrefix = "$CATEGORY:"
	correctMarker  = "="

	// questionPattern captures the prompt after the ::::[choice] marker, up to
	// an optional escaped colon and the opening bracket of the block tag.
	questionPattern = `::::\[choice\](.*?)(?:\\:)?\s*\[`

	// answerPattern captures the marker and the answer text. A "#" starts
	// the feedback annotation unless escaped as "\#". A lone backslash at
	// the end of the line is kept as text.
	answerPattern = `^\s*([=~])((?:\\.|\\$|[^#\\])*)(?:#.*)?$`

	idPattern = `^//\s*question:\s*(\S+)`
)

var (
	questionRe = regexp.MustCompile(questionPattern)
	answerRe   = regexp.MustCompile(answerPattern)
	idRe       = regexp.MustCompile(idPattern)
)

var giftUnescaper = strings.NewReplacer(
	`\:`, ":",
	`\=`, "=",
	`\~`, "~",
	`\#`, "#",
	`\{`, "{",
	`\}`, "}",
)

// unescape replaces GIFT escape sequences with the characters they stand for.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return giftUnescaper.Replace(s)
}
