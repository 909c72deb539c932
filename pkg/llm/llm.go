package llm

// LLM is the single external collaborator of the pipeline: given a prompt
// (and optionally inline image data), return free-form text.
type LLM interface {
	// Chat sends a text-only prompt and returns the response text.
	Chat(prompt string) (string, error)

	// ChatVision sends a prompt together with inline image bytes and
	// returns the response text. mimeType is e.g. "image/png".
	ChatVision(prompt string, image []byte, mimeType string) (string, error)
}

// Provider represents the LLM provider type
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
)
