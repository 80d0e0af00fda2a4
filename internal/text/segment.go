package text

import "strings"

// Segment splits a document into an ordered sequence of sentences.
// A sentence ends at '.', '!' or '?' followed by whitespace; trailing
// text without a terminator forms the final sentence. Every non-empty
// sentence is kept, whatever its length, so downstream per-sentence
// analysis covers the whole document.
func Segment(doc string) []string {
	doc = strings.ReplaceAll(doc, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range doc {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(doc) || doc[i+1] == ' ' || doc[i+1] == '\t' {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
