package model

// EmbeddingDimension is the dimension of the embedding vector.
// Gemini text-embedding-004 uses 768 dimensions.
const EmbeddingDimension = 768

// Profile holds deployment-wide settings that shape prompts and
// user-facing fallback strings. Loaded once at startup, immutable after.
type Profile struct {
	// Language is the primary reply language of the deployment
	Language string `toml:"language"`
	// NotFoundMessage is the fixed sentence the Q&A prompt instructs the
	// model to emit when the answer is not in the context
	NotFoundMessage string `toml:"not_found_message"`
	// ApologyMessage is returned by the Q&A endpoint on any internal failure
	ApologyMessage string `toml:"apology_message"`
}

// DefaultProfile returns the built-in profile for a Turkish-speaking
// deployment.
func DefaultProfile() *Profile {
	return &Profile{
		Language:        "Turkish",
		NotFoundMessage: "Kayıtlarımda buna dair bir bilgi bulamadım.",
		ApologyMessage:  "Üzgünüm, şu an cevap veremiyorum.",
	}
}
