package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:     "plain text",
			input:    "Hello World",
			contains: []string{"Hello World"},
		},
		{
			name:     "safe HTML preserved",
			input:    "<p>Annual <strong>SOC 2</strong> review</p>",
			contains: []string{"<p>", "<strong>", "SOC 2"},
		},
		{
			name:     "script tag removed",
			input:    "<p>Hello</p><script>alert('xss')</script>",
			contains: []string{"<p>Hello</p>"},
			excludes: []string{"<script>", "alert"},
		},
		{
			name:     "onclick removed",
			input:    `<p onclick="alert('xss')">Click me</p>`,
			contains: []string{"<p>", "Click me"},
			excludes: []string{"onclick"},
		},
		{
			name:     "javascript URL removed",
			input:    `<a href="javascript:alert('xss')">Link</a>`,
			contains: []string{"Link"},
			excludes: []string{"javascript:"},
		},
		{
			name:     "safe link preserved",
			input:    `<a href="https://example.com">Link</a>`,
			contains: []string{"<a", "https://example.com", "Link"},
		},
		{
			name:     "table elements preserved",
			input:    "<table><tbody><tr><td>Cell</td></tr></tbody></table>",
			contains: []string{"<table>", "<tr>", "<td>", "Cell"},
		},
		{
			name:     "iframe removed",
			input:    `<iframe src="https://evil.com"></iframe><p>Content</p>`,
			contains: []string{"<p>Content</p>"},
			excludes: []string{"<iframe", "evil.com"},
		},
		{
			name:     "onerror removed",
			input:    `<img src="x" onerror="alert('xss')">`,
			contains: []string{"<img"},
			excludes: []string{"onerror"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sanitize(tt.input)

			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("Sanitize() result should contain %q, got %q", s, result)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(result, s) {
					t.Errorf("Sanitize() result should NOT contain %q, got %q", s, result)
				}
			}
		})
	}
}

func TestSanitize_FormattingElements(t *testing.T) {
	tests := []struct {
		tag   string
		input string
	}{
		{"strong", "<strong>Bold</strong>"},
		{"em", "<em>Italic</em>"},
		{"u", "<u>Underline</u>"},
		{"s", "<s>Strikethrough</s>"},
		{"mark", "<mark>Highlighted</mark>"},
		{"blockquote", "<blockquote>Quote</blockquote>"},
		{"code", "<code>Code</code>"},
		{"pre", "<pre>Preformatted</pre>"},
		{"ul", "<ul><li>Item</li></ul>"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			result := Sanitize(tt.input)
			if !strings.Contains(result, "<"+tt.tag+">") {
				t.Errorf("Sanitize() should preserve <%s>, got %q", tt.tag, result)
			}
		})
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"", true},
		{"Hello World", true},
		{"<p>Has tags</p>", false},
		{"Has < but no closing", true},
		{"Has > but no opening", true},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			if got := IsPlainText(tt.content); got != tt.want {
				t.Errorf("IsPlainText(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestPlainTextToHTML(t *testing.T) {
	result := PlainTextToHTML("Line 1\nLine 2 & <more>")
	for _, s := range []string{"<p>", "<br>", "&amp;", "&lt;more&gt;", "</p>"} {
		if !strings.Contains(result, s) {
			t.Errorf("PlainTextToHTML should contain %q, got %q", s, result)
		}
	}
	if PlainTextToHTML("") != "" {
		t.Error("empty input should stay empty")
	}
}

func TestPrepareForDisplay(t *testing.T) {
	// Legacy plain-text content gets wrapped, HTML content gets sanitized.
	plain := string(PrepareForDisplay("Just text"))
	if !strings.Contains(plain, "<p>Just text</p>") {
		t.Errorf("plain text not wrapped: %q", plain)
	}

	html := string(PrepareForDisplay("<p>Hi</p><script>bad</script>"))
	if !strings.Contains(html, "<p>Hi</p>") || strings.Contains(html, "<script>") {
		t.Errorf("html not sanitized correctly: %q", html)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	input := "<p>Hello <strong>World</strong></p>"
	first := Sanitize(input)
	if second := Sanitize(first); first != second {
		t.Errorf("Sanitize not idempotent: first=%q, second=%q", first, second)
	}
}
