package text

import (
	"regexp"
	"strings"
)

var (
	mentionPattern = regexp.MustCompile(`@\w+`)
	hashtagPattern = regexp.MustCompile(`#\w+`)
	urlPattern     = regexp.MustCompile(`http\S+`)
)

// Normalize strips @mention, #hashtag and http(s) URL tokens from a
// sentence and trims surrounding whitespace. The result is what signal
// providers are queried with; the original sentence is kept for
// display. Normalizing an already-clean sentence returns it unchanged
// modulo trim.
func Normalize(s string) string {
	s = mentionPattern.ReplaceAllString(s, "")
	s = hashtagPattern.ReplaceAllString(s, "")
	s = urlPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
