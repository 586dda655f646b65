package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/creasty/defaults"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/fragment"
	"github.com/jrschumacher/jwtinspect/internal/inspector"
	"github.com/jrschumacher/jwtinspect/internal/issuer"
	"github.com/jrschumacher/jwtinspect/internal/sample"
)

func setConfig(t *testing.T) {
	t.Helper()
	c := &config.Config{}
	require.NoError(t, defaults.Set(c))
	cfg = c
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		decodeURL, decodeOutput = "", ""
		decodeFragmentIDs = fragment.DefaultIDs
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReadTokenInput(t *testing.T) {
	got, err := readTokenInput(strings.NewReader("ignored"), []string{"a.b"}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "a.b", got)

	got, err = readTokenInput(strings.NewReader(" a.b.c\n"), []string{"-"}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, " a.b.c\n", got)

	got, err = readTokenInput(strings.NewReader(""), nil, "https://x.example/#state=1&access_token=a.b", fragment.DefaultIDs)
	require.NoError(t, err)
	assert.Equal(t, "a.b", got)

	_, err = readTokenInput(strings.NewReader(""), nil, "https://x.example/#state=1", fragment.DefaultIDs)
	assert.ErrorIs(t, err, fragment.ErrNoToken)
}

func TestWriteInspection(t *testing.T) {
	raw, err := sample.Mint(sample.Options{Provider: issuer.Google, Subject: "alice"})
	require.NoError(t, err)
	insp := inspector.New()

	var buf bytes.Buffer
	require.NoError(t, writeInspection(&buf, insp, raw, "json", time.Now()))
	var model map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &model))
	assert.Equal(t, "google", model["provider"])

	buf.Reset()
	require.NoError(t, writeInspection(&buf, insp, raw, "TABLE", time.Now()))
	assert.Contains(t, buf.String(), "CLAIM")
	assert.Contains(t, buf.String(), "alice")

	assert.Error(t, writeInspection(&buf, insp, raw, "xml", time.Now()))
	assert.ErrorContains(t, writeInspection(&buf, insp, "nope", "json", time.Now()), "two or three parts")
}

func TestDecodeCommandFromStdin(t *testing.T) {
	setConfig(t)
	raw, err := sample.Mint(sample.Options{Provider: issuer.IEF})
	require.NoError(t, err)

	out, err := run(t, raw+"\n", "decode", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"provider": "ief"`)
}

func TestSampleTokenCommand(t *testing.T) {
	setConfig(t)

	out, err := run(t, "", "util", "sample-token", "--provider", "b2c", "--claim", "scp=read")
	require.NoError(t, err)

	m, err := inspector.New().Inspect(out)
	require.NoError(t, err)
	assert.Equal(t, issuer.B2C, m.Provider)

	_, err = run(t, "", "util", "sample-token", "--provider", "msa")
	assert.ErrorIs(t, err, sample.ErrNoSampleIssuer)
}
