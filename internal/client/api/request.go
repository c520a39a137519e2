package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Request describes one outbound API call. Path is joined to the gateway's
// configured origin. Header carries caller-supplied headers; keys the caller
// sets explicitly win over the gateway's defaults.
type Request struct {
	Method string // defaults to GET
	Path   string
	Header http.Header
	Body   io.Reader
}

// Result is a classified response. Exactly one of JSON and Text is
// populated, chosen by the response's declared content type. An empty body
// sets neither.
type Result struct {
	StatusCode int
	JSON       json.RawMessage
	Text       string
}

// Decode unmarshals the structured payload into out.
func (r *Result) Decode(out any) error {
	if r.JSON == nil {
		return fmt.Errorf("response carried no structured payload")
	}
	if err := json.Unmarshal(r.JSON, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsNull reports whether the structured payload is the JSON null literal,
// which the backend uses for "no data yet" (e.g. an unfilled profile).
func (r *Result) IsNull() bool {
	return bytes.Equal(bytes.TrimSpace(r.JSON), []byte("null"))
}

// isStructured reports whether the declared content type is JSON.
func isStructured(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// compactJSON renders a JSON payload as a single-line string for use in
// error messages.
func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
