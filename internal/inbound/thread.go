package inbound

import (
	"regexp"
	"strings"
)

var (
	// Bracketed token as embedded in outbound subjects: [thread_abc123]
	bracketedThreadPattern = regexp.MustCompile(`\[(thread_[a-zA-Z0-9_]+)\]`)

	// Bare token as it appears in References headers or quoted bodies
	bareThreadPattern = regexp.MustCompile(`thread_[a-zA-Z0-9_]+`)
)

// ExtractThreadID resolves the conversation a reply belongs to. The rules
// run in a fixed priority order and the first match wins:
//
//  1. bracketed token in the subject line
//  2. X-Thread-ID header
//  3. token inside a References-style header
//  4. thread-id field provided directly by the forwarding service
//  5. token anywhere in the plain-text or HTML body
//
// Returns the empty string when no rule matches.
func ExtractThreadID(email *InboundEmail) string {
	if m := bracketedThreadPattern.FindStringSubmatch(email.Subject); len(m) == 2 {
		return m[1]
	}

	if v := headerValue(email.Headers, "X-Thread-ID"); v != "" {
		return v
	}

	if refs := headerValue(email.Headers, "References"); strings.Contains(refs, "thread_") {
		if m := bareThreadPattern.FindString(refs); m != "" {
			return m
		}
	}

	if email.ThreadID != "" {
		return email.ThreadID
	}

	if m := bareThreadPattern.FindString(email.Text); m != "" {
		return m
	}
	if m := bareThreadPattern.FindString(email.HTML); m != "" {
		return m
	}

	return ""
}

// headerValue looks up a header case-insensitively; providers do not agree
// on header-name casing.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
