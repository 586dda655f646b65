package inspector

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/creasty/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrschumacher/jwtinspect/internal/claims"
	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/issuer"
	"github.com/jrschumacher/jwtinspect/internal/sample"
	"github.com/jrschumacher/jwtinspect/internal/token"
)

func mint(t *testing.T, opts sample.Options) string {
	t.Helper()
	raw, err := sample.Mint(opts)
	require.NoError(t, err)
	return raw
}

func TestInspectBlankInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		m, err := New().Inspect(raw)
		require.NoError(t, err)
		assert.True(t, m.Empty())
	}
}

func TestInspectProviders(t *testing.T) {
	insp := New()
	for _, p := range []issuer.Provider{issuer.AAD, issuer.B2C, issuer.IEF, issuer.Google, issuer.Unknown} {
		m, err := insp.Inspect(mint(t, sample.Options{Provider: p}))
		require.NoError(t, err)
		assert.Equal(t, p, m.Provider)
		assert.Equal(t, p.Description(), m.ProviderDescription)
		assert.True(t, m.HasSignature)
	}
}

func TestInspectErrorsPassThrough(t *testing.T) {
	_, err := New().Inspect("only-one-part")
	assert.ErrorIs(t, err, token.ErrMalformedToken)

	_, err = New(WithMaxLength(10)).Inspect(mint(t, sample.Options{}))
	assert.ErrorIs(t, err, token.ErrTokenTooLarge)

	sentinel := errors.New("decoder unavailable")
	_, err = New(WithDecoder(token.DecoderFunc(func(string, bool) (*token.Object, error) {
		return nil, sentinel
	}))).Inspect("a.b")
	assert.Same(t, sentinel, err)
}

func TestInspectOptions(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := mint(t, sample.Options{Provider: issuer.AAD, Now: now})

	insp := New(
		WithTimeLayout(time.RFC3339),
		WithDescriptions(claims.New(map[string]string{"aad_tid": "Tenant"})),
	)
	m, err := insp.Inspect(raw)
	require.NoError(t, err)

	for _, r := range m.Rows {
		switch r.Claim {
		case "iat":
			assert.Equal(t, "2024-01-02T03:04:05Z", r.Value)
		case "tid":
			assert.Equal(t, "Tenant", r.Description)
		case "sub":
			assert.Empty(t, r.Description)
		}
	}
}

func TestFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("google_sub: Google account id\ncustom_claim: Custom\n"), 0o600))

	cfg := &config.Config{}
	require.NoError(t, defaults.Set(cfg))
	cfg.DescriptionsFile = path

	insp, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, claims.Default().Len()+1, insp.Descriptions().Len())

	m, err := insp.Inspect(mint(t, sample.Options{Provider: issuer.Google}))
	require.NoError(t, err)
	for _, r := range m.Rows {
		if r.Claim == "sub" {
			assert.Equal(t, "Google account id", r.Description)
		}
		if r.Claim == "exp" {
			assert.True(t, strings.HasSuffix(r.Value, " UTC"))
		}
	}

	cfg.DescriptionsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = FromConfig(cfg)
	assert.Error(t, err)
}
