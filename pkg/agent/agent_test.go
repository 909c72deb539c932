package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLLM returns a canned response (or error) and records the last
// prompt it was asked.
type stubLLM struct {
	response   string
	err        error
	lastPrompt string
	lastImage  []byte
	lastMime   string
}

func (s *stubLLM) Chat(prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

func (s *stubLLM) ChatVision(prompt string, image []byte, mimeType string) (string, error) {
	s.lastPrompt = prompt
	s.lastImage = image
	s.lastMime = mimeType
	return s.response, s.err
}

func TestVisionAgentAnalyze(t *testing.T) {
	stub := &stubLLM{response: "```json\n{\"screen_type\": \"home\", \"components\": [{\"type\": \"button\"}]}\n```"}
	a := NewVisionAgent(stub)

	desc := a.Analyze([]byte{0x89, 0x50}, "image/png")

	require.True(t, desc.OK())
	assert.Equal(t, "home", desc.ScreenType)
	assert.Len(t, desc.Components, 1)
	assert.Equal(t, "image/png", stub.lastMime)
	assert.Contains(t, stub.lastPrompt, "UI/UX analysis expert")
}

func TestVisionAgentCallFailure(t *testing.T) {
	stub := &stubLLM{err: errors.New("connection refused")}
	a := NewVisionAgent(stub)

	desc := a.Analyze([]byte{0x89}, "image/png")

	assert.True(t, desc.Failed())
	assert.Equal(t, "connection refused", desc.Error)
	assert.Empty(t, desc.Components)
}

func TestVisionAgentParseFailure(t *testing.T) {
	stub := &stubLLM{response: "The screenshot appears to show a login form."}
	a := NewVisionAgent(stub)

	desc := a.Analyze([]byte{0x89}, "image/png")

	assert.True(t, desc.ParseFailed())
	assert.Equal(t, stub.response, desc.RawResponse)
}
