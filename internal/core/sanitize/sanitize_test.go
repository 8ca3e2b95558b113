package sanitize

import (
	"html"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text unchanged", in: "hello world", want: "hello world"},
		{name: "script tag", in: "<script>alert(1)</script>", want: "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{name: "ampersand", in: "fish & chips", want: "fish &amp; chips"},
		{name: "quotes", in: `say "hi" it's`, want: "say &#34;hi&#34; it&#39;s"},
		{name: "unicode preserved", in: "привет <b>", want: "привет &lt;b&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTML(tt.in))
		})
	}
}

func TestHTML_NoMarkupCharactersSurvive(t *testing.T) {
	inputs := []string{
		`<>&"'`,
		`<img src=x onerror="alert('x')">`,
		"a<b>c&d\"e'f",
	}

	for _, in := range inputs {
		out := HTML(in)
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
		assert.NotContains(t, out, `"`)
		assert.NotContains(t, out, "'")

		// Every remaining ampersand must start an entity.
		for i := range len(out) {
			if out[i] == '&' {
				assert.Contains(t, out[i:], ";")
			}
		}

		// Readable content is preserved.
		assert.Equal(t, in, html.UnescapeString(out))
	}
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "hello", want: "hello"},
		{name: "color codes stripped", in: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "bell and backspace removed", in: "a\x07b\x08c", want: "abc"},
		{name: "newlines and tabs kept", in: "one\n\ttwo", want: "one\n\ttwo"},
		{name: "markup kept", in: "<b>", want: "<b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Terminal(tt.in))
		})
	}
}
