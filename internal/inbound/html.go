package inbound

import (
	"regexp"
	"strings"
)

var (
	scriptStylePattern = regexp.MustCompile(`(?i)<(script|style)[^>]*>[\s\S]*?</(script|style)>`)
	tagPattern         = regexp.MustCompile(`<[^>]*>`)
)

// StripHTML performs a naive HTML-to-text pass used when a reply arrives
// with an HTML body only. It is deliberately simple: tags become spaces,
// whitespace collapses, a handful of entities are decoded.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}

	text := scriptStylePattern.ReplaceAllString(html, "")
	text = tagPattern.ReplaceAllString(text, " ")

	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&#39;", "'")

	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}
