// Package inbound implements the email webhook ingestion pipeline: payload
// normalization across forwarding providers, thread-id resolution and reply
// persistence.
package inbound

import (
	"encoding/json"
	"strings"

	"github.com/jhillyerd/enmime"
)

// InboundEmail is the fixed intermediate shape every provider payload is
// normalized into before validation and thread resolution.
type InboundEmail struct {
	Text     string            `json:"text"`
	HTML     string            `json:"html"`
	Subject  string            `json:"subject"`
	From     string            `json:"from"`
	Headers  map[string]string `json:"headers"`
	ThreadID string            `json:"thread_id"`
	Raw      json.RawMessage   `json:"-"`
}

// Forwarding providers put the same logical field under different keys.
// Each row enumerates the accepted source paths for one normalized field,
// first non-empty match wins.
var sourcePaths = map[string][][]string{
	"text":    {{"text"}, {"body", "text"}, {"content", "text"}, {"plain"}},
	"html":    {{"html"}, {"body", "html"}, {"content", "html"}},
	"subject": {{"subject"}, {"headers", "subject"}},
	"from":    {{"from"}, {"sender"}, {"headers", "from"}},
	"thread":  {{"threadId"}, {"thread_id"}},
}

// Keys under which providers post the original message as raw RFC 5322 MIME.
var rawMIMEPaths = [][]string{{"raw_mime"}, {"email"}}

// Normalize parses an arbitrary provider payload into the fixed InboundEmail
// shape. It never fails on unknown shapes; missing fields are left empty and
// caught by Validate.
func Normalize(raw []byte) (*InboundEmail, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	email := &InboundEmail{
		Text:     lookupString(payload, sourcePaths["text"]),
		HTML:     lookupString(payload, sourcePaths["html"]),
		Subject:  lookupString(payload, sourcePaths["subject"]),
		From:     lookupString(payload, sourcePaths["from"]),
		ThreadID: lookupString(payload, sourcePaths["thread"]),
		Headers:  lookupHeaders(payload),
		Raw:      json.RawMessage(raw),
	}

	// Providers that forward the original message verbatim post raw MIME;
	// parse it to fill any fields the JSON shape left empty.
	if mime := lookupString(payload, rawMIMEPaths); mime != "" {
		fillFromMIME(email, mime)
	}

	return email, nil
}

// lookupString walks each candidate path in order and returns the first
// non-empty string value.
func lookupString(payload map[string]interface{}, paths [][]string) string {
	for _, path := range paths {
		if v := walk(payload, path); v != "" {
			return v
		}
	}
	return ""
}

// walk descends nested objects along path and stringifies the leaf.
func walk(payload map[string]interface{}, path []string) string {
	current := payload
	for i, key := range path {
		value, ok := current[key]
		if !ok || value == nil {
			return ""
		}
		if i == len(path)-1 {
			if s, ok := value.(string); ok {
				return s
			}
			// Numeric thread ids from some providers
			if f, ok := value.(float64); ok {
				b, _ := json.Marshal(f)
				return string(b)
			}
			return ""
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return ""
		}
		current = next
	}
	return ""
}

// lookupHeaders extracts the headers object, stringifying scalar values.
func lookupHeaders(payload map[string]interface{}) map[string]string {
	headers := make(map[string]string)
	obj, ok := payload["headers"].(map[string]interface{})
	if !ok {
		return headers
	}
	for k, v := range obj {
		if s, ok := v.(string); ok {
			headers[k] = s
		}
	}
	return headers
}

// fillFromMIME parses a raw RFC 5322 message and fills still-empty
// normalized fields from it.
func fillFromMIME(email *InboundEmail, raw string) {
	env, err := enmime.ReadEnvelope(strings.NewReader(raw))
	if err != nil {
		return
	}

	if email.Text == "" {
		email.Text = env.Text
	}
	if email.HTML == "" {
		email.HTML = env.HTML
	}
	if email.Subject == "" {
		email.Subject = env.GetHeader("Subject")
	}
	if email.From == "" {
		email.From = env.GetHeader("From")
	}
	for _, header := range []string{"X-Thread-ID", "References", "In-Reply-To", "Message-ID"} {
		if v := env.GetHeader(header); v != "" {
			if _, exists := email.Headers[header]; !exists {
				email.Headers[header] = v
			}
		}
	}
}
