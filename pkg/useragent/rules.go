package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Match is the leftmost product token found in a user agent string together with
// the context rules need to resolve it.
type Match struct {
	// UserAgent is the full input string.
	UserAgent string
	// Product is the product token as written in the input (e.g. "Chrome").
	Product string
	// Version is the digit run following the product token. May be empty.
	Version string

	// Last-resort defaults configured with WithAppInfo.
	AppName    string
	AppVersion string
}

// Rule is one step of browser resolution. Applies selects the matches the rule
// handles (nil means every match). Resolve returns false to fall through to the
// next rule.
type Rule struct {
	Name    string
	Applies func(m Match) bool
	Resolve func(m Match) (Identity, bool)
}

var (
	rvPattern      = regexp.MustCompile(`(?i)\brv[ :]+(\d+)`)
	edgePattern    = regexp.MustCompile(`Edge/(\d+)`)
	versionPattern = regexp.MustCompile(`(?i)version/(\d+)`)
)

// DefaultRules returns the rule list used by Parse:
// TridentRule, EdgeAsOperaRule, ProductRule.
func DefaultRules() []Rule {
	return []Rule{TridentRule(), EdgeAsOperaRule(), ProductRule()}
}

// TridentRule resolves Internet Explorer. Trident's own version differs from the
// browser's, so the version comes from the "rv:" marker. Without one the identity
// is unversioned.
func TridentRule() Rule {
	return Rule{
		Name: RuleTrident,
		Applies: func(m Match) bool {
			return strings.EqualFold(m.Product, "trident")
		},
		Resolve: func(m Match) (Identity, bool) {
			return Identity{
				Name:    BrowserInternetExplorer,
				Version: parseFloat(submatch(rvPattern, m.UserAgent)),
			}, true
		},
	}
}

// EdgeAsOperaRule reports legacy Edge ("Chrome/... Edge/16") as opera with Edge's
// version, so Edge is admitted against the opera minimum. Replace it with
// WithRules to classify Edge differently.
func EdgeAsOperaRule() Rule {
	return Rule{
		Name: RuleEdgeAsOpera,
		Applies: func(m Match) bool {
			return m.Product == "Chrome"
		},
		Resolve: func(m Match) (Identity, bool) {
			v := submatch(edgePattern, m.UserAgent)
			if v == "" {
				return Identity{}, false
			}
			return Identity{Name: BrowserOpera, Version: parseFloat(v)}, true
		},
	}
}

// ProductRule is the default resolution: the product token names the browser and
// its digits give the version. A "Version/N" marker anywhere in the input
// overrides that version, as Safari reports its release there.
func ProductRule() Rule {
	return Rule{
		Name: RuleProduct,
		Resolve: func(m Match) (Identity, bool) {
			name, version := m.Product, m.Version
			marker := submatch(versionPattern, m.UserAgent)

			if version == "" {
				if marker != "" {
					version = marker
				} else {
					name, version = m.AppName, m.AppVersion
				}
			}
			if marker != "" {
				version = marker
			}

			return Identity{
				Name:    cases.Lower(language.Und).String(name),
				Version: parseFloat(version),
			}, true
		},
	}
}

// submatch returns the first capture group of re in s, or "".
func submatch(re *regexp.Regexp, s string) string {
	sub := re.FindStringSubmatch(s)
	if len(sub) < 2 {
		return ""
	}
	return sub[1]
}
