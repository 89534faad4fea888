package gift

import "golang.org/x/net/html"

// DecodeEntities converts HTML character references such as "&agrave;",
// "&rsquo;" or "&#232;" to their literal characters.
func DecodeEntities(line string) string {
	return html.UnescapeString(line)
}
