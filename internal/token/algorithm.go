package token

import (
	"github.com/lestrrat-go/jwx/v2/jwa"
)

// Algorithm summarizes the signing fields of the header.
type Algorithm struct {
	Name      string `json:"alg,omitempty"`
	Type      string `json:"typ,omitempty"`
	KeyID     string `json:"kid,omitempty"`
	Known     bool   `json:"known"`
	Symmetric bool   `json:"symmetric"`
	Unsecured bool   `json:"unsecured"`
}

// Algorithm describes the header's alg, typ and kid values.
func (t *Token) Algorithm() Algorithm {
	h := t.Header()
	a := Algorithm{
		Name:  h.String("alg"),
		Type:  h.String("typ"),
		KeyID: h.String("kid"),
	}
	if a.Name == "" {
		return a
	}

	var alg jwa.SignatureAlgorithm
	if err := alg.Accept(a.Name); err != nil {
		return a
	}
	a.Known = true
	a.Unsecured = alg == jwa.NoSignature
	a.Symmetric = !a.Unsecured && alg.IsSymmetric()
	return a
}
