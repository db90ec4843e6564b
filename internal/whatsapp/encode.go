package whatsapp

import (
	"net/url"
	"strings"
)

// componentEscapes undoes the QueryEscape choices that differ from a
// browser's encodeURIComponent. QueryEscape already encodes a literal "+"
// as %2B, so every "+" left in its output stands for a space.
var componentEscapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a single URL query value,
// producing the same bytes as encodeURIComponent. Spaces become %20 rather
// than "+", so the result decodes identically with both query and path
// unescaping.
func EncodeComponent(s string) string {
	return componentEscapes.Replace(url.QueryEscape(s))
}
