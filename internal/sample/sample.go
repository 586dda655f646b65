// Package sample mints signed example tokens that classify as a chosen
// identity provider. The tokens are meant for demos and tests; their keys are
// thrown away after signing.
package sample

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/jrschumacher/jwtinspect/internal/issuer"
)

// ErrNoSampleIssuer is returned for providers no issuer classifies as.
var ErrNoSampleIssuer = errors.New("no sample issuer for provider")

// Options describe the token to mint. Zero values get sensible defaults.
type Options struct {
	Provider issuer.Provider
	Tenant   string
	Subject  string
	Audience string
	// Policy overrides the B2C/IEF policy name.
	Policy   string
	Now      time.Time
	Lifetime time.Duration
	Extra    map[string]any
}

func (o *Options) setDefaults() {
	if o.Tenant == "" {
		o.Tenant = uuid.NewString()
	}
	if o.Subject == "" {
		o.Subject = uuid.NewString()
	}
	if o.Audience == "" {
		o.Audience = uuid.NewString()
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.Lifetime == 0 {
		o.Lifetime = time.Hour
	}
	if o.Policy == "" {
		switch o.Provider {
		case issuer.B2C:
			o.Policy = "B2C_1_signupsignin"
		case issuer.IEF:
			o.Policy = "B2C_1A_signup_signin"
		}
	}
}

// Claims returns the provider-identifying claims for opts.
func Claims(opts Options) (map[string]any, error) {
	opts.setDefaults()
	switch opts.Provider {
	case issuer.AAD:
		return map[string]any{
			"iss": "https://login.microsoftonline.com/" + opts.Tenant + "/v2.0",
			"tid": opts.Tenant,
			"oid": opts.Subject,
		}, nil
	case issuer.B2C:
		return map[string]any{
			"iss": "https://contoso.b2clogin.com/" + opts.Tenant + "/v2.0/",
			"tfp": opts.Policy,
		}, nil
	case issuer.IEF:
		return map[string]any{
			"iss": "https://contoso.b2clogin.com/" + opts.Tenant + "/v2.0/",
			"acr": opts.Policy,
		}, nil
	case issuer.Google:
		return map[string]any{
			"iss":            "https://accounts.google.com",
			"email_verified": true,
		}, nil
	case issuer.Unknown:
		return map[string]any{"iss": "https://issuer.example.com/"}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSampleIssuer, opts.Provider)
}

// Mint builds and signs a token with a fresh ES256 key.
func Mint(opts Options) (string, error) {
	opts.setDefaults()

	providerClaims, err := Claims(opts)
	if err != nil {
		return "", err
	}

	tok := jwt.New()
	registered := map[string]any{
		jwt.SubjectKey:    opts.Subject,
		jwt.AudienceKey:   []string{opts.Audience},
		jwt.IssuedAtKey:   opts.Now,
		jwt.NotBeforeKey:  opts.Now,
		jwt.ExpirationKey: opts.Now.Add(opts.Lifetime),
	}
	for _, claims := range []map[string]any{registered, providerClaims, opts.Extra} {
		for k, v := range claims {
			if err := tok.Set(k, v); err != nil {
				return "", fmt.Errorf("failed to set claim %s: %w", k, err)
			}
		}
	}

	key, err := signingKey()
	if err != nil {
		return "", err
	}
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.ES256, key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return string(signed), nil
}

func signingKey() (jwk.Key, error) {
	privKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	key, err := jwk.FromRaw(privKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWK: %w", err)
	}
	if err := key.Set(jwk.KeyIDKey, "sample-"+uuid.NewString()[:8]); err != nil {
		return nil, fmt.Errorf("failed to set key id: %w", err)
	}
	return key, nil
}
