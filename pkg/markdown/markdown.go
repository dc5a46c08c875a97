package markdown

import (
	"bytes"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts admin-authored markdown into a restricted HTML subset.
// This is a security boundary: the output is injected verbatim into pages,
// so everything outside a small allow-list is stripped, not escaped.

// headingSyntax matches markdown heading markers at the start of a line.
// Headings are disallowed in content blocks.
var headingSyntax = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s+`)

// Raw HTML passes through the converter; the bluemonday policy below is
// the sanitization boundary and strips everything outside the allow-list.
var converter = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkhtml.WithHardWraps(),
		goldmarkhtml.WithUnsafe(),
	),
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br",
		"strong", "b", "em", "i", "u",
		"ul", "ol", "li",
		"blockquote",
		"code", "pre",
	)
	p.AllowAttrs("class").Globally()
	return p
}

// Render converts markdown to sanitized HTML. Heading syntax is removed
// before conversion; the converted HTML then passes through the allow-list
// sanitizer. Script tags and other disallowed markup are dropped entirely.
func Render(md string) (string, error) {
	stripped := headingSyntax.ReplaceAllString(md, "")

	var buf bytes.Buffer
	if err := converter.Convert([]byte(stripped), &buf); err != nil {
		return "", err
	}

	return policy.Sanitize(buf.String()), nil
}
