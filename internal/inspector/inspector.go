// Package inspector ties parsing, classification and presentation together
// behind one call shared by the CLI and the HTTP handlers.
package inspector

import (
	"fmt"
	"strings"

	"github.com/jrschumacher/jwtinspect/internal/claims"
	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/logger"
	"github.com/jrschumacher/jwtinspect/internal/render"
	"github.com/jrschumacher/jwtinspect/internal/token"
)

// Inspector is safe for concurrent use.
type Inspector struct {
	descriptions *claims.Descriptions
	timeLayout   string
	parseOpts    []token.Option
	presenter    *render.Presenter
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithDescriptions replaces the claim description table.
func WithDescriptions(d *claims.Descriptions) Option {
	return func(i *Inspector) {
		i.descriptions = d
	}
}

// WithTimeLayout sets the layout used for timestamp claims.
func WithTimeLayout(layout string) Option {
	return func(i *Inspector) {
		i.timeLayout = layout
	}
}

// WithMaxLength limits accepted token length. Zero or less disables the check.
func WithMaxLength(n int) Option {
	return func(i *Inspector) {
		i.parseOpts = append(i.parseOpts, token.WithMaxLength(n))
	}
}

// WithDecoder replaces the segment decoder used by parsing.
func WithDecoder(d token.Decoder) Option {
	return func(i *Inspector) {
		i.parseOpts = append(i.parseOpts, token.WithDecoder(d))
	}
}

// New returns an Inspector using the built-in descriptions and default time
// layout unless opts say otherwise.
func New(opts ...Option) *Inspector {
	i := &Inspector{
		descriptions: claims.Default(),
		timeLayout:   render.DefaultTimeLayout,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.presenter = render.NewPresenter(i.descriptions, render.WithTimeLayout(i.timeLayout))
	return i
}

// FromConfig builds an Inspector from application config, merging the
// descriptions override file when one is set.
func FromConfig(cfg *config.Config) (*Inspector, error) {
	descriptions := claims.Default()
	if cfg.DescriptionsFile != "" {
		overrides, err := claims.LoadFile(cfg.DescriptionsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load descriptions: %w", err)
		}
		descriptions = descriptions.Merge(overrides)
		logger.Debug("Merged claim descriptions", "file", cfg.DescriptionsFile, "overrides", len(overrides))
	}

	return New(
		WithDescriptions(descriptions),
		WithTimeLayout(cfg.TimeLayout),
		WithMaxLength(cfg.MaxTokenLength),
	), nil
}

// Inspect parses raw and renders it. Blank input yields an empty model and no
// error; parse errors are returned unchanged.
func (i *Inspector) Inspect(raw string) (*render.Model, error) {
	if strings.TrimSpace(raw) == "" {
		return render.Empty(), nil
	}
	tok, err := token.Parse(raw, i.parseOpts...)
	if err != nil {
		return nil, err
	}
	return i.presenter.Render(tok), nil
}

// Descriptions returns the table used for claim descriptions.
func (i *Inspector) Descriptions() *claims.Descriptions {
	return i.descriptions
}
