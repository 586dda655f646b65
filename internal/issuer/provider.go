// Package issuer classifies which identity provider minted a token
package issuer

import (
	"fmt"
	"strings"
)

// Provider identifies the identity provider that issued a token.
type Provider int

const (
	Unknown Provider = iota
	AAD
	B2C
	IEF
	Google
	// MSA is a Microsoft personal account token. No rule produces it yet.
	MSA
)

var providerNames = map[Provider]string{
	Unknown: "unknown",
	AAD:     "aad",
	B2C:     "b2c",
	IEF:     "ief",
	Google:  "google",
	MSA:     "msa",
}

var providerDescriptions = map[Provider]string{
	AAD:    `This token was issued by <a href="https://docs.microsoft.com/en-us/azure/active-directory/develop/active-directory-token-and-claims">Azure Active Directory</a>.`,
	B2C:    `This token was issued by <a href="https://docs.microsoft.com/en-us/azure/active-directory-b2c/active-directory-b2c-reference-tokens">Azure AD B2C</a>.`,
	IEF:    `This token was issued using an <a href="https://azure.microsoft.com/en-us/resources/samples/active-directory-b2c-advanced-policies/">custom policy by Identity Experience Framework</a>.`,
	Google: `This token was issued by <a href="https://developers.google.com/identity/protocols/OpenIDConnect">Google</a>.`,
	MSA:    `This is a Microsoft Account token.`,
}

// Providers lists every provider tag in declaration order.
func Providers() []Provider {
	return []Provider{Unknown, AAD, B2C, IEF, Google, MSA}
}

// String returns the lower-case key used by the claim description table.
func (p Provider) String() string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return providerNames[Unknown]
}

// Description returns the HTML sentence describing the provider, or "" for Unknown.
func (p Provider) Description() string {
	return providerDescriptions[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Provider) UnmarshalText(text []byte) error {
	parsed, err := ParseProvider(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseProvider returns the provider named by key (case-insensitive).
func ParseProvider(key string) (Provider, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for p, name := range providerNames {
		if name == key {
			return p, nil
		}
	}
	return Unknown, fmt.Errorf("unknown provider %q", key)
}
