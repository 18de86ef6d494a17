package model

import "time"

// MediaRef is an opaque reference to an uploaded media payload, usable as
// an attachment in a generation call (e.g. gs://bucket/object).
type MediaRef struct {
	URI      string
	MIMEType string
	Size     int64
}

// GenerateRequest is one generation call to the model gateway.
type GenerateRequest struct {
	// Instruction is the system prompt
	Instruction string
	// Prompt is the user-visible input text, may be empty when Media is set
	Prompt string
	// Media is an optional attachment acquired from a MediaStore
	Media *MediaRef
	// JSONOutput requests a JSON-formatted reply from the provider
	JSONOutput bool
	// Backoff overrides the gateway's default retry wait when positive
	Backoff time.Duration
}
