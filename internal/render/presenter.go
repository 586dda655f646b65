package render

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/jrschumacher/jwtinspect/internal/issuer"
	"github.com/jrschumacher/jwtinspect/internal/token"
)

// DefaultTimeLayout formats timestamp claims.
const DefaultTimeLayout = "Mon, 02 Jan 2006 15:04:05 UTC"

// timestampClaims hold Unix epoch seconds when numeric.
var timestampClaims = map[string]bool{
	"exp":       true,
	"nbf":       true,
	"iat":       true,
	"auth_time": true,
}

// Describer looks up a claim description for a provider.
type Describer interface {
	Describe(claim string, p issuer.Provider) string
}

// Presenter builds render models. It holds no per-token state and is safe for
// concurrent use.
type Presenter struct {
	describer  Describer
	timeLayout string
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithTimeLayout sets the layout used for timestamp claims.
func WithTimeLayout(layout string) Option {
	return func(p *Presenter) {
		if layout != "" {
			p.timeLayout = layout
		}
	}
}

// NewPresenter returns a presenter annotating rows with d. A nil d leaves
// descriptions empty.
func NewPresenter(d Describer, opts ...Option) *Presenter {
	p := &Presenter{describer: d, timeLayout: DefaultTimeLayout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render builds the model for tok. A nil token yields an empty model.
func (p *Presenter) Render(tok *token.Token) *Model {
	if tok == nil {
		return Empty()
	}

	provider := tok.Provider()
	m := &Model{
		Token:               tok.Raw(),
		EncodedHeader:       tok.EncodedHeader(),
		EncodedClaims:       tok.EncodedClaims(),
		EncodedSignature:    tok.EncodedSignature(),
		HasSignature:        tok.HasSignature(),
		Provider:            provider,
		ProviderDescription: provider.Description(),
		Algorithm:           tok.Algorithm(),
		Header:              tok.Header(),
		Claims:              tok.Claims(),
		Rows:                make([]Row, 0, tok.Claims().Len()),
	}

	for _, name := range tok.Claims().Keys() {
		value, _ := tok.Claims().Get(name)
		m.Rows = append(m.Rows, p.row(name, value, provider))
	}
	return m
}

func (p *Presenter) row(name string, value any, provider issuer.Provider) Row {
	r := Row{Claim: name, Raw: value, Classes: classValue}
	if p.describer != nil {
		r.Description = p.describer.Describe(name, provider)
	}

	if ts, ok := p.Timestamp(name, value); ok {
		r.Value = ts.Format(p.timeLayout)
		r.Time = &ts
		r.Classes = classTimestamp
		return r
	}

	r.Value = FormatValue(value)
	if s, ok := value.(string); ok && IsGUID(s) {
		r.GUID = true
		r.Classes += " " + classGUID
	}
	return r
}

// Epoch-second bounds of timestamps that render as calendar times: year 1
// through year 9999 UTC.
const (
	minTimestamp = -62135596800
	maxTimestamp = 253402300799
)

// Timestamp interprets value as epoch seconds when name is a timestamp claim
// and value is numeric and within year 1 to 9999.
func (p *Presenter) Timestamp(name string, value any) (time.Time, bool) {
	if !timestampClaims[name] {
		return time.Time{}, false
	}
	secs, ok := number(value)
	if !ok || math.IsNaN(secs) || secs < minTimestamp || secs > maxTimestamp {
		return time.Time{}, false
	}
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC(), true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// FormatValue renders a claim value as text: strings verbatim, scalars as
// their JSON literal, objects and arrays as compact JSON.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// IsGUID reports whether s is a GUID in the dashed 8-4-4-4-12 form.
func IsGUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
