// Package components renders the inspector's HTML. Components are plain
// templ.Components so handlers can render them directly or stream them
// through datastar.
package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-beta.11/bundles/datastar.js"

// htmlWriter remembers the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, p)
	}
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Page wraps content in the document shell.
func Page(appEnv string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>JWT Inspector</title>`,
			`<link rel="stylesheet" href="/static/style.css">`,
			`<script type="module" src="`, datastarScript, `"></script>`,
			`</head><body data-env="`)
		hw.text(appEnv)
		hw.raw(`"><main class="container"><h1>JWT Inspector</h1>`)
		hw.component(ctx, content)
		hw.raw(`<footer><small>Tokens are decoded on the server and never stored. Signatures are not verified.</small></footer>`)
		hw.raw(`</main></body></html>`)
		return hw.err
	})
}

// Inspector renders the input form and the current inspection. The form
// posts normally without JavaScript; with datastar loaded it streams updates
// from /api/inspect as the token changes.
func Inspector(raw string, inspection templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section data-signals="{token: '`)
		hw.text(jsString(raw))
		hw.raw(`', provider: '', error: ''}">`,
			`<form method="post" action="/" data-on-submit="@post('/api/inspect')">`,
			`<label for="token">Encoded token</label>`,
			`<textarea id="token" name="token" rows="8" spellcheck="false" autocomplete="off"`,
			` placeholder="Paste a JWT (header.claims.signature)"`,
			` data-bind-token data-on-input__debounce.300ms="@post('/api/inspect')">`)
		hw.text(raw)
		hw.raw(`</textarea>`,
			`<p class="status"><span data-show="$provider != ''">Issuer: <strong data-text="$provider"></strong></span>`,
			`<span class="error" data-show="$error != ''" data-text="$error"></span></p>`,
			`<noscript><button type="submit">Inspect</button></noscript>`,
			`</form>`)
		hw.component(ctx, inspection)
		hw.raw(`</section>`)
		return hw.err
	})
}

// jsString escapes s for a single-quoted JavaScript string literal.
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return r.Replace(s)
}
