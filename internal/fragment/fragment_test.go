package fragment

import (
	"errors"
	"testing"
)

func TestValue(t *testing.T) {
	cases := []struct {
		fragment string
		id       string
		want     string
		ok       bool
	}{
		{"#id_token=abc.def&state=xyz", "id_token", "abc.def", true},
		{"state=xyz&id_token=abc.def", "id_token", "abc.def", true},
		{"#access_token=tok", "id_token", "", false},
		{"#xid_token=abc", "id_token", "", false},
		{"#id_token=", "id_token", "", true},
		{"", "id_token", "", false},
	}
	for _, c := range cases {
		got, ok := Value(c.fragment, c.id)
		if got != c.want || ok != c.ok {
			t.Errorf("Value(%q, %q) = %q, %v; want %q, %v", c.fragment, c.id, got, ok, c.want, c.ok)
		}
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode("a+b%2Fc")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got != "a b/c" {
		t.Fatalf("Decode = %q, want %q", got, "a b/c")
	}
	if _, err := Decode("%zz"); err == nil {
		t.Fatal("expected error for invalid escape")
	}
}

func TestTokenFromURL(t *testing.T) {
	got, err := TokenFromURL("https://app.example.com/callback#state=1&id_token=eyJh.eyJi.c2ln")
	if err != nil {
		t.Fatalf("TokenFromURL error: %v", err)
	}
	if got != "eyJh.eyJi.c2ln" {
		t.Fatalf("TokenFromURL = %q", got)
	}

	got, err = TokenFromURL("#access_token=eyJh.eyJi")
	if err != nil || got != "eyJh.eyJi" {
		t.Fatalf("TokenFromURL bare fragment = %q, %v", got, err)
	}

	got, err = TokenFromURL("https://app.example.com/#code=1&custom=eyJh.eyJi", "custom")
	if err != nil || got != "eyJh.eyJi" {
		t.Fatalf("TokenFromURL custom id = %q, %v", got, err)
	}

	if _, err := TokenFromURL("https://app.example.com/cb?state=1&id_token=eyJh.eyJi"); !errors.Is(err, ErrNoToken) {
		t.Fatalf("query string must not be searched, got %v", err)
	}
	if _, err := TokenFromURL("id_token=eyJh.eyJi"); !errors.Is(err, ErrNoToken) {
		t.Fatalf("input without a fragment must not match, got %v", err)
	}

	if _, err := TokenFromURL("https://app.example.com/#code=1"); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}
