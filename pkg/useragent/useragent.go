package useragent

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

// Identity is the normalized browser information parsed from a user agent string.
// Name is always lowercase. Version is NaN when no version could be established.
type Identity struct {
	Name    string
	Version float64
}

// HasVersion reports whether the identity carries a numeric version.
func (id Identity) HasVersion() bool { return !math.IsNaN(id.Version) }

// String returns the identity as "name/version", or "name/?" when unversioned.
func (id Identity) String() string {
	if !id.HasVersion() {
		return id.Name + "/?"
	}
	return id.Name + "/" + strconv.FormatFloat(id.Version, 'f', -1, 64)
}

// Leftmost product token followed by its major version. Trident requires the slash,
// every other product accepts "MSIE 10.0" style tokens as well.
var productPattern = regexp.MustCompile(`(?i)(?:(trident)/|(opera|chrome|safari|firefox|msie)/?)\s*(\d+)`)

// Option configures a Parser.
type Option func(*Parser)

// WithRules replaces the rule list. Rules are evaluated in the given order.
func WithRules(rules ...Rule) Option {
	return func(p *Parser) {
		p.rules = append([]Rule(nil), rules...)
	}
}

// WithAppInfo sets the application name and version used as last-resort defaults
// when the product token carries no version.
func WithAppInfo(name, version string) Option {
	return func(p *Parser) {
		p.appName = name
		p.appVersion = version
	}
}

// Parser turns user agent strings into identities by running an ordered rule list
// over the leftmost product token. The first rule that applies and resolves wins.
type Parser struct {
	rules      []Rule
	appName    string
	appVersion string
}

// New creates a Parser using DefaultRules unless overridden.
func New(opts ...Option) *Parser {
	p := &Parser{rules: DefaultRules()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses a user agent string with the default rule set.
//
// It returns ErrUnsupportedBrowser when the string contains no recognizable
// product/version token.
func Parse(ua string) (Identity, error) {
	return defaultParser.Parse(ua)
}

// Parse parses a user agent string into an Identity.
func (p *Parser) Parse(ua string) (Identity, error) {
	if ua == "" {
		return Identity{}, errors.Join(ErrUnsupportedBrowser, ErrEmptyUserAgent)
	}

	m, ok := matchProduct(ua)
	if !ok {
		return Identity{}, ErrUnsupportedBrowser
	}
	m.AppName = p.appName
	m.AppVersion = p.appVersion

	for _, rule := range p.rules {
		if rule.Applies != nil && !rule.Applies(m) {
			continue
		}
		if id, ok := rule.Resolve(m); ok {
			return id, nil
		}
	}

	return Identity{}, ErrUnsupportedBrowser
}

// matchProduct finds the leftmost product token in ua.
func matchProduct(ua string) (Match, bool) {
	sub := productPattern.FindStringSubmatch(ua)
	if sub == nil {
		return Match{}, false
	}

	product := sub[1]
	if product == "" {
		product = sub[2]
	}

	return Match{
		UserAgent: ua,
		Product:   product,
		Version:   sub[3],
	}, true
}
