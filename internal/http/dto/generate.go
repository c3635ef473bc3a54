package dto

import (
	"bytes"
	"encoding/json"
)

// Fixed messages returned to browser clients.
const (
	MsgMissingContentType = "Missing content type."
	MsgInvalidContentType = "Invalid content type."
	MsgInvalidAPIKey      = "Invalid API key."
	MsgInvalidRequestBody = "Invalid request body."
)

// GenerateRequest keeps type undecoded so a non-string type is reported as an
// invalid content type rather than a malformed body.
type GenerateRequest struct {
	Type     json.RawMessage   `json:"type"`
	FormData map[string]string `json:"formData"`
}

// ContentType returns the request type as a string. Absent and null yield "".
// ok is false when type is present but not a JSON string.
func (r GenerateRequest) ContentType() (string, bool) {
	raw := bytes.TrimSpace(r.Type)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

type GenerateResponse struct {
	GeneratedText string `json:"generated_text"`
	Type          string `json:"type"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
