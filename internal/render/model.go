// Package render turns parsed tokens into display-ready models
package render

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"

	"github.com/jrschumacher/jwtinspect/internal/issuer"
	"github.com/jrschumacher/jwtinspect/internal/token"
)

// CSS classes used by the inspector page.
const (
	ClassHeader    = "jwtHeader"
	ClassClaims    = "jwtClaims"
	ClassSignature = "jwtSignature"

	classTimestamp = "prewrapbreakword"
	classValue     = "mono forcebreakword"
	classGUID      = "guid"
)

// Fragment is one styled piece of the encoded token.
type Fragment struct {
	Class string
	Text  string
}

// Row is one claim of the claims table.
type Row struct {
	Claim       string     `json:"claim"`
	Value       string     `json:"value"`
	Raw         any        `json:"raw"`
	Description string     `json:"description,omitempty"`
	Classes     string     `json:"classes"`
	Time        *time.Time `json:"time,omitempty"`
	GUID        bool       `json:"guid,omitempty"`
}

// Model is everything a presentation layer needs to show one token.
type Model struct {
	Token               string          `json:"token,omitempty"`
	EncodedHeader       string          `json:"encodedHeader,omitempty"`
	EncodedClaims       string          `json:"encodedClaims,omitempty"`
	EncodedSignature    string          `json:"encodedSignature,omitempty"`
	HasSignature        bool            `json:"hasSignature"`
	Provider            issuer.Provider `json:"provider"`
	ProviderDescription string          `json:"providerDescription,omitempty"`
	Algorithm           token.Algorithm `json:"algorithm"`
	Header              *token.Object   `json:"header,omitempty"`
	Claims              *token.Object   `json:"claims,omitempty"`
	Rows                []Row           `json:"rows"`
}

// Empty returns a model with nothing to show.
func Empty() *Model {
	return &Model{Rows: []Row{}}
}

// Empty reports whether the model holds no token.
func (m *Model) Empty() bool {
	return m == nil || m.Token == ""
}

// Fragments returns the header, claims and, when present, signature segments
// with their CSS classes.
func (m *Model) Fragments() []Fragment {
	if m.Empty() {
		return nil
	}
	frags := []Fragment{
		{Class: ClassHeader, Text: m.EncodedHeader},
		{Class: ClassClaims, Text: m.EncodedClaims},
	}
	if m.HasSignature {
		frags = append(frags, Fragment{Class: ClassSignature, Text: m.EncodedSignature})
	}
	return frags
}

// HeaderJSON returns the decoded header, indented.
func (m *Model) HeaderJSON() string {
	if m.Empty() {
		return ""
	}
	return indent(m.Header)
}

// ClaimsJSON returns the decoded claims, indented.
func (m *Model) ClaimsJSON() string {
	if m.Empty() {
		return ""
	}
	return indent(m.Claims)
}

func indent(obj *token.Object) string {
	raw, err := obj.MarshalJSON()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
