package util

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripHTML removes every tag from s, unescapes entities and collapses whitespace.
func StripHTML(s string) string {
	cleaned := html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.Join(strings.Fields(cleaned), " ")
}
