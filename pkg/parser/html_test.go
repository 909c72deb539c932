package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fullDocument = `<!DOCTYPE html>
<html>
<head><title>Wireframe</title></head>
<body><button>Tap me</button></body>
</html>`

func TestExtractHTMLFromHTMLFence(t *testing.T) {
	raw := "Here is the improved wireframe:\n```html\n" + fullDocument + "\n```\nLet me know what you think!"

	got := ExtractHTML(raw)
	assert.Equal(t, fullDocument, got)
}

func TestExtractHTMLFromPlainFence(t *testing.T) {
	raw := "```\n" + fullDocument + "\n```"

	got := ExtractHTML(raw)
	assert.Equal(t, fullDocument, got)
}

func TestExtractHTMLBareDocument(t *testing.T) {
	assert.Equal(t, fullDocument, ExtractHTML(fullDocument))
}

func TestExtractHTMLUnterminatedFence(t *testing.T) {
	raw := "```html\n" + fullDocument

	got := ExtractHTML(raw)
	assert.Equal(t, fullDocument, got)
}

func TestExtractHTMLWrapsFragment(t *testing.T) {
	got := ExtractHTML("<div class=\"card\">Improved card</div>")

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<div class=\"card\">Improved card</div>")
	assert.Contains(t, got, "</html>")
}

func TestExtractHTMLWrapsFencedFragment(t *testing.T) {
	got := ExtractHTML("```html\n<section>hero</section>\n```")

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<section>hero</section>")
}
