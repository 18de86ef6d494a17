package types

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared across layers
var (
	// ErrModelUnavailable means both model tiers were exhausted for one call
	ErrModelUnavailable = goerr.New("model unavailable: all tiers exhausted")

	// ErrMalformedModelOutput means the model replied but the content could
	// not be validated into the action schema
	ErrMalformedModelOutput = goerr.New("malformed model output")

	// ErrNotFound is wrapped by all repository backends when a record is absent
	ErrNotFound = goerr.New("record not found")
)

// Context keys for error values
const (
	RawOutputKey = "raw_output"
	ActionIDKey  = "action_id"
	TierKey      = "tier"
)
