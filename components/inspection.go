package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/jrschumacher/jwtinspect/internal/render"
)

// InspectionID is the element id datastar merges inspection results into.
const InspectionID = "inspection"

// Inspection renders a decoded token. errMsg, when set, replaces the result.
// Descriptions are trusted HTML from the claim tables and are written as is;
// everything taken from the token is escaped.
func Inspection(m *render.Model, errMsg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div id="`, InspectionID, `">`)
		switch {
		case errMsg != "":
			hw.raw(`<p class="error">`)
			hw.text(errMsg)
			hw.raw(`</p>`)
		case m.Empty():
			hw.raw(`<p class="hint">Paste a token above to decode its header and claims.</p>`)
		default:
			writeInspection(hw, m)
		}
		hw.raw(`</div>`)
		return hw.err
	})
}

func writeInspection(hw *htmlWriter, m *render.Model) {
	if m.ProviderDescription != "" {
		hw.raw(`<p class="provider">`, m.ProviderDescription, `</p>`)
	}

	hw.raw(`<h2>Encoded</h2><pre class="encoded mono forcebreakword">`)
	for i, f := range m.Fragments() {
		if i > 0 {
			hw.raw(`.`)
		}
		hw.raw(`<span class="`, f.Class, `">`)
		hw.text(f.Text)
		hw.raw(`</span>`)
	}
	hw.raw(`</pre>`)

	hw.raw(`<h2>Header</h2><pre class="json mono">`)
	hw.text(m.HeaderJSON())
	hw.raw(`</pre>`)

	hw.raw(`<h2>Claims</h2><table class="claims"><thead><tr>`,
		`<th>Claim</th><th>Value</th><th>Description</th></tr></thead><tbody>`)
	for _, r := range m.Rows {
		hw.raw(`<tr><td class="mono">`)
		hw.text(r.Claim)
		hw.raw(`</td><td class="`, r.Classes, `">`)
		hw.text(r.Value)
		hw.raw(`</td><td>`, r.Description, `</td></tr>`)
	}
	hw.raw(`</tbody></table>`)

	if !m.HasSignature {
		hw.raw(`<p class="warning">This token has no signature.</p>`)
	}
}
