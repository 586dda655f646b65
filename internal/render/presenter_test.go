package render

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrschumacher/jwtinspect/internal/claims"
	"github.com/jrschumacher/jwtinspect/internal/issuer"
	"github.com/jrschumacher/jwtinspect/internal/token"
)

func parse(t *testing.T, header, payload, signature string) *token.Token {
	t.Helper()
	raw := base64.RawURLEncoding.EncodeToString([]byte(header)) + "." +
		base64.RawURLEncoding.EncodeToString([]byte(payload))
	if signature != "" {
		raw += "." + signature
	}
	tok, err := token.Parse(raw)
	require.NoError(t, err)
	return tok
}

func rowByClaim(t *testing.T, m *Model, claim string) Row {
	t.Helper()
	for _, r := range m.Rows {
		if r.Claim == claim {
			return r
		}
	}
	t.Fatalf("no row for claim %q", claim)
	return Row{}
}

func TestRenderNilToken(t *testing.T) {
	m := NewPresenter(claims.Default()).Render(nil)
	assert.True(t, m.Empty())
	assert.Empty(t, m.Rows)
	assert.Nil(t, m.Fragments())
	assert.Equal(t, "", m.ClaimsJSON())
}

func TestRenderTimestamps(t *testing.T) {
	tok := parse(t, `{"alg":"RS256"}`,
		`{"exp":1700000000,"nbf":"soon","iat":1700000000.5,"auth_time":1,"other":1700000000}`, "sig")
	m := NewPresenter(claims.Default()).Render(tok)

	exp := rowByClaim(t, m, "exp")
	assert.Equal(t, "Tue, 14 Nov 2023 22:13:20 UTC", exp.Value)
	require.NotNil(t, exp.Time)
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), *exp.Time)
	assert.Equal(t, "prewrapbreakword", exp.Classes)

	nbf := rowByClaim(t, m, "nbf")
	assert.Equal(t, "soon", nbf.Value)
	assert.Nil(t, nbf.Time)
	assert.Equal(t, "mono forcebreakword", nbf.Classes)

	iat := rowByClaim(t, m, "iat")
	require.NotNil(t, iat.Time)
	assert.Equal(t, 500*time.Millisecond, time.Duration(iat.Time.Nanosecond()))

	assert.Equal(t, "Thu, 01 Jan 1970 00:00:01 UTC", rowByClaim(t, m, "auth_time").Value)
	assert.Equal(t, "1700000000", rowByClaim(t, m, "other").Value)
}

func TestRenderOutOfRangeTimestamps(t *testing.T) {
	tok := parse(t, `{}`, `{"exp":1e300,"nbf":99999999999999999999,"iat":-1e12,"auth_time":253402300799}`, "")
	m := NewPresenter(nil).Render(tok)

	for claim, want := range map[string]string{"exp": "1e300", "nbf": "99999999999999999999", "iat": "-1e12"} {
		r := rowByClaim(t, m, claim)
		assert.Equal(t, want, r.Value, claim)
		assert.Nil(t, r.Time, claim)
		assert.Equal(t, "mono forcebreakword", r.Classes, claim)
	}
	assert.Equal(t, "Fri, 31 Dec 9999 23:59:59 UTC", rowByClaim(t, m, "auth_time").Value)
}

func TestRenderCustomTimeLayout(t *testing.T) {
	tok := parse(t, `{}`, `{"exp":1700000000}`, "")
	m := NewPresenter(nil, WithTimeLayout(time.RFC3339)).Render(tok)
	assert.Equal(t, "2023-11-14T22:13:20Z", m.Rows[0].Value)
	assert.Equal(t, "", m.Rows[0].Description)
}

func TestRenderPassThroughValues(t *testing.T) {
	tok := parse(t, `{}`,
		`{"s":"text","n":12.50,"b":true,"z":null,"arr":["pwd","mfa"],"obj":{"k":"v"}}`, "")
	m := NewPresenter(nil).Render(tok)

	want := map[string]string{
		"s":   "text",
		"n":   "12.50",
		"b":   "true",
		"z":   "null",
		"arr": `["pwd","mfa"]`,
		"obj": `{"k":"v"}`,
	}
	for claim, value := range want {
		assert.Equal(t, value, rowByClaim(t, m, claim).Value, claim)
	}
}

func TestRenderNestedValuesKeepOrder(t *testing.T) {
	tok := parse(t, `{}`, `{"ctx":{"z":1,"a":[{"y":true,"b":null}]}}`, "")
	m := NewPresenter(nil).Render(tok)
	assert.Equal(t, `{"z":1,"a":[{"y":true,"b":null}]}`, rowByClaim(t, m, "ctx").Value)
}

func TestRenderRowsFollowPayloadOrderAndDescriptions(t *testing.T) {
	tok := parse(t, `{"alg":"RS256"}`,
		`{"oid":"00000000-0000-0000-0000-000000000001","iss":"https://sts.windows.net/tenant/","aud":"api"}`, "c2ln")
	d := claims.Default()
	m := NewPresenter(d).Render(tok)

	require.Len(t, m.Rows, 3)
	assert.Equal(t, "oid", m.Rows[0].Claim)
	assert.Equal(t, "iss", m.Rows[1].Claim)
	assert.Equal(t, "aud", m.Rows[2].Claim)

	assert.Equal(t, issuer.AAD, m.Provider)
	assert.Equal(t, issuer.AAD.Description(), m.ProviderDescription)
	assert.Equal(t, d.Describe("oid", issuer.AAD), m.Rows[0].Description)
	assert.NotEmpty(t, m.Rows[0].Description)
	assert.True(t, m.Rows[0].GUID)
	assert.Equal(t, "mono forcebreakword guid", m.Rows[0].Classes)
	assert.False(t, m.Rows[2].GUID)
}

func TestFragments(t *testing.T) {
	signed := NewPresenter(nil).Render(parse(t, `{}`, `{}`, "c2ln"))
	frags := signed.Fragments()
	require.Len(t, frags, 3)
	assert.Equal(t, ClassHeader, frags[0].Class)
	assert.Equal(t, ClassClaims, frags[1].Class)
	assert.Equal(t, Fragment{Class: ClassSignature, Text: "c2ln"}, frags[2])

	unsigned := NewPresenter(nil).Render(parse(t, `{}`, `{}`, ""))
	assert.Len(t, unsigned.Fragments(), 2)
}

func TestModelJSON(t *testing.T) {
	m := NewPresenter(claims.Default()).Render(parse(t, `{"alg":"HS256","typ":"JWT"}`,
		`{"iss":"https://accounts.google.com","exp":1700000000}`, "c2ln"))

	assert.Equal(t, "{\n  \"alg\": \"HS256\",\n  \"typ\": \"JWT\"\n}", m.HeaderJSON())
	assert.Contains(t, m.ClaimsJSON(), `"exp": 1700000000`)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, m))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "google", decoded["provider"])
	assert.Equal(t, true, decoded["hasSignature"])
	assert.Len(t, decoded["rows"], 2)
	assert.True(t, strings.Index(buf.String(), `"iss"`) < strings.Index(buf.String(), `"exp"`))
}

func TestWriteText(t *testing.T) {
	m := NewPresenter(claims.Default()).Render(parse(t, `{"alg":"RS256","kid":"k1"}`,
		`{"iss":"https://accounts.google.com","exp":1700000000}`, ""))

	var buf bytes.Buffer
	now := time.Date(2023, 11, 14, 20, 13, 20, 0, time.UTC)
	require.NoError(t, WriteText(&buf, m, now))

	out := buf.String()
	assert.Contains(t, out, "google - This token was issued by Google.")
	assert.Contains(t, out, "RS256 (kid k1)")
	assert.Contains(t, out, "absent")
	assert.Contains(t, out, "Tue, 14 Nov 2023 22:13:20 UTC (2 hours from now)")
	assert.NotContains(t, out, "<a href")

	buf.Reset()
	require.NoError(t, WriteText(&buf, Empty(), now))
	assert.Equal(t, "No token.\n", buf.String())
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "plain", PlainText("plain"))
	assert.Equal(t, "See the docs & notes.", PlainText(`See <a href="https://example.com">the docs</a> &amp; notes.`))
}

func TestIsGUID(t *testing.T) {
	assert.True(t, IsGUID("9188040d-6c67-4c5b-b112-36a304b66dad"))
	assert.True(t, IsGUID("9188040D-6C67-4C5B-B112-36A304B66DAD"))
	assert.False(t, IsGUID("{9188040D-6C67-4C5B-B112-36A304B66DAD}"))
	assert.False(t, IsGUID("urn:uuid:9188040d-6c67-4c5b-b112-36a304b66dad"))
	assert.False(t, IsGUID("9188040d6c674c5bb11236a304b66dad"))
	assert.False(t, IsGUID("alice@example.com"))
}
