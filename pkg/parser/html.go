package parser

import "strings"

const htmlShellHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Wireframe</title>
</head>
<body>
`

const htmlShellFooter = `
</body>
</html>`

// ExtractHTML pulls an HTML document out of a possibly-fenced model
// response. If the extracted text does not begin with a recognized
// document root it is wrapped in a minimal shell, so the return value is
// always a complete standalone document.
func ExtractHTML(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if i := strings.Index(cleaned, "```html"); i >= 0 {
		start := i + len("```html")
		if end := strings.Index(cleaned[start:], "```"); end >= 0 {
			cleaned = cleaned[start : start+end]
		} else {
			cleaned = cleaned[start:]
		}
		cleaned = strings.TrimSpace(cleaned)
	} else if i := strings.Index(cleaned, "```"); i >= 0 {
		start := i + len("```")
		if end := strings.Index(cleaned[start:], "```"); end >= 0 {
			cleaned = cleaned[start : start+end]
		} else {
			cleaned = cleaned[start:]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	if !strings.HasPrefix(cleaned, "<!DOCTYPE") && !strings.HasPrefix(cleaned, "<html") {
		cleaned = htmlShellHeader + cleaned + htmlShellFooter
	}

	return cleaned
}
