package issuer

import (
	"regexp"
	"strings"
)

const (
	issClaim = "iss"
	tfpClaim = "tfp"
	acrClaim = "acr"

	b2cPolicyPrefix = "b2c_1_"
	iefPolicyPrefix = "b2c_1a_"
)

// Source exposes decoded claims by name.
type Source interface {
	Get(name string) (any, bool)
}

// Map adapts a plain claims map to Source.
type Map map[string]any

// Get implements Source.
func (m Map) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Facts are the normalized claim values every rule looks at.
type Facts struct {
	// Issuer is the lower-cased iss claim.
	Issuer string
	TFP    string
	ACR    string
}

// hasPolicyPrefix reports whether tfp or acr starts with prefix, ignoring case.
func (f Facts) hasPolicyPrefix(prefix string) bool {
	return strings.HasPrefix(strings.ToLower(f.TFP), prefix) ||
		strings.HasPrefix(strings.ToLower(f.ACR), prefix)
}

func (f Facts) hasAnyPrefix(prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(f.Issuer, prefix) {
			return true
		}
	}
	return false
}

// Rule maps facts to a provider. A rule that does not apply returns false so
// evaluation continues with the next rule.
type Rule struct {
	Name  string
	Match func(Facts) (Provider, bool)
}

var (
	b2cGlobalHost    = regexp.MustCompile(`(?i)https://[^./]*\.b2clogin\.com/`)
	b2cSovereignHost = regexp.MustCompile(`(?i)https://[^./]*\.b2clogin\.cn/`)
)

// policyRule builds a B2C/IEF rule for one cloud. When the cloud matches but
// neither policy prefix does, the rule does not apply and the AAD rules get a
// chance at the same issuer.
func policyRule(name, authority string, host *regexp.Regexp) Rule {
	return Rule{
		Name: name,
		Match: func(f Facts) (Provider, bool) {
			inCloud := strings.HasPrefix(f.Issuer, authority) || host.MatchString(f.Issuer)
			if !inCloud || !strings.Contains(f.Issuer, "2.0") {
				return Unknown, false
			}
			switch {
			case f.hasPolicyPrefix(b2cPolicyPrefix):
				return B2C, true
			case f.hasPolicyPrefix(iefPolicyPrefix):
				return IEF, true
			}
			return Unknown, false
		},
	}
}

func prefixRule(name string, p Provider, prefixes ...string) Rule {
	return Rule{
		Name: name,
		Match: func(f Facts) (Provider, bool) {
			return p, f.hasAnyPrefix(prefixes...)
		},
	}
}

// Rules is the ordered rule list; the first match wins. The B2C rules must run
// before the AAD ones because B2C authorities share the AAD prefixes.
var Rules = []Rule{
	policyRule("b2c-global", "https://login.microsoftonline.com/", b2cGlobalHost),
	policyRule("b2c-sovereign", "https://login.chinacloudapi.cn/", b2cSovereignHost),
	prefixRule("aad-global", AAD,
		"https://login.microsoftonline.com/",
		"https://sts.windows.net/",
		"https://login.windows.net/",
		"https://login.microsoft.com/",
	),
	prefixRule("aad-sovereign", AAD,
		"https://login.chinacloudapi.cn/",
		"https://sts.chinacloudapi.cn/",
	),
	prefixRule("google", Google,
		"accounts.google.com",
		"https://accounts.google.com",
	),
}

// Classify returns the provider that issued the claims. It never fails:
// missing or unrecognized issuers yield Unknown.
func Classify(claims Source) Provider {
	facts, ok := Extract(claims)
	if !ok {
		return Unknown
	}
	return ClassifyFacts(facts)
}

// ClassifyFacts evaluates Rules against already extracted facts.
func ClassifyFacts(facts Facts) Provider {
	for _, rule := range Rules {
		if p, ok := rule.Match(facts); ok {
			return p
		}
	}
	return Unknown
}

// Extract reads iss, tfp and acr from claims. It returns false when there is
// no usable issuer.
func Extract(claims Source) (Facts, bool) {
	if claims == nil {
		return Facts{}, false
	}
	iss := stringClaim(claims, issClaim)
	if iss == "" {
		return Facts{}, false
	}
	return Facts{
		Issuer: strings.ToLower(iss),
		TFP:    stringClaim(claims, tfpClaim),
		ACR:    stringClaim(claims, acrClaim),
	}, true
}

func stringClaim(claims Source, name string) string {
	v, ok := claims.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
