// Package fragment extracts tokens from URL fragments such as
// "#id_token=...&state=...", the shape used by implicit-flow redirects.
package fragment

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoToken is returned when none of the requested fragment ids is present.
var ErrNoToken = errors.New("no token found in URL fragment")

// DefaultIDs are tried in order by TokenFromURL when no ids are given.
var DefaultIDs = []string{"id_token", "access_token"}

// Value returns the raw value following "id=" in fragment, up to the next '&'.
// A leading '#' is ignored.
func Value(fragment, id string) (string, bool) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" || id == "" {
		return "", false
	}

	key := id + "="
	for _, pair := range strings.Split(fragment, "&") {
		if value, ok := strings.CutPrefix(pair, key); ok {
			return value, true
		}
	}
	return "", false
}

// Decode turns '+' into spaces and percent-decodes the rest.
func Decode(value string) (string, error) {
	decoded, err := url.PathUnescape(strings.ReplaceAll(value, "+", "%20"))
	if err != nil {
		return "", fmt.Errorf("failed to decode fragment value: %w", err)
	}
	return decoded, nil
}

// TokenFromURL returns the first decoded value among ids found in the
// fragment of rawURL. A bare fragment ("#id_token=...") is accepted too; the
// query string is never searched.
func TokenFromURL(rawURL string, ids ...string) (string, error) {
	if len(ids) == 0 {
		ids = DefaultIDs
	}

	frag := rawURL
	if !strings.HasPrefix(rawURL, "#") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("failed to parse URL: %w", err)
		}
		if u.Fragment == "" {
			return "", ErrNoToken
		}
		frag = u.EscapedFragment()
	}

	for _, id := range ids {
		if value, ok := Value(frag, id); ok {
			return Decode(value)
		}
	}
	return "", ErrNoToken
}
