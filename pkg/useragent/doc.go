// Package useragent parses HTTP User-Agent strings into a normalized browser
// Identity: a lowercase name and a numeric major version.
//
// Parsing locates the leftmost product token (opera, chrome, safari, firefox, msie
// or trident/) together with its major version, then runs an ordered list of rules
// over that match. Each rule handles one vendor quirk and either resolves the
// identity or falls through to the next rule:
//
//   - TridentRule – Internet Explorer 11 reports its version in "rv:11.0", not in
//     the Trident token. Without an rv marker the version is NaN.
//   - EdgeAsOperaRule – legacy Edge ("Chrome/… Edge/16") resolves to opera with
//     Edge's version.
//   - ProductRule – the product token and its version, overridden by a
//     "Version/N" marker when one is present (Safari, Presto Opera, WebViews).
//
// Versions follow parseFloat semantics, so an identity with no digits has a NaN
// version. NaN compares false against every threshold, which makes such an
// identity fail any minimum-version check.
//
// # Usage
//
//	id, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//	    // errors.Is(err, useragent.ErrUnsupportedBrowser)
//	}
//	log.Printf("browser=%s", id)
//
// A parser with a different rule list:
//
//	p := useragent.New(useragent.WithRules(
//	    useragent.TridentRule(),
//	    useragent.ProductRule(),
//	))
//	id, err := p.Parse(ua)
//
// # Error Handling
//
// Parse returns ErrUnsupportedBrowser when no product token is found. An empty
// input additionally matches ErrEmptyUserAgent.
package useragent
