package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/gosuri/uitable"
	"golang.org/x/net/html"
)

const maxColWidth = 72

// WriteJSON writes the model as indented JSON.
func WriteJSON(w io.Writer, m *Model) error {
	if m == nil {
		m = Empty()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// WriteText writes a terminal-friendly view of the model. Timestamps get a
// relative hint computed against now.
func WriteText(w io.Writer, m *Model, now time.Time) error {
	if m.Empty() {
		_, err := fmt.Fprintln(w, "No token.")
		return err
	}

	summary := uitable.New()
	summary.MaxColWidth = maxColWidth
	summary.Wrap = true
	summary.AddRow("Issuer:", issuerLine(m))
	summary.AddRow("Algorithm:", algorithmLine(m))
	summary.AddRow("Signature:", signatureLine(m))
	if _, err := fmt.Fprintln(w, summary.String()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	table := uitable.New()
	table.MaxColWidth = maxColWidth
	table.Wrap = true
	table.AddRow("CLAIM", "VALUE", "DESCRIPTION")
	for _, r := range m.Rows {
		value := r.Value
		if r.Time != nil {
			value += " (" + humanize.RelTime(*r.Time, now, "ago", "from now") + ")"
		}
		table.AddRow(r.Claim, value, PlainText(r.Description))
	}
	_, err := fmt.Fprintln(w, table.String())
	return err
}

func issuerLine(m *Model) string {
	if desc := PlainText(m.ProviderDescription); desc != "" {
		return m.Provider.String() + " - " + desc
	}
	return m.Provider.String()
}

func algorithmLine(m *Model) string {
	a := m.Algorithm
	if a.Name == "" {
		return "(none declared)"
	}
	var notes []string
	switch {
	case !a.Known:
		notes = append(notes, "unrecognized")
	case a.Unsecured:
		notes = append(notes, "unsecured")
	case a.Symmetric:
		notes = append(notes, "symmetric")
	}
	if a.KeyID != "" {
		notes = append(notes, "kid "+a.KeyID)
	}
	if len(notes) == 0 {
		return a.Name
	}
	return a.Name + " (" + strings.Join(notes, ", ") + ")"
}

func signatureLine(m *Model) string {
	if m.HasSignature {
		return "present, not verified"
	}
	return "absent"
}

// PlainText strips markup from a description, keeping its text.
func PlainText(s string) string {
	if !strings.ContainsRune(s, '<') && !strings.ContainsRune(s, '&') {
		return s
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
