// Package admission decides whether a browser identity meets a minimum-version
// allowlist.
//
// A Policy holds requirements in a fixed order. Admit walks them and admits the
// identity on the first requirement with a matching name (case-insensitive) whose
// MinVersion is not above the identity's version. There is no fuzzy matching and no
// partial credit. Versions are compared as float64, so an unversioned identity
// (NaN) is always rejected.
//
// The built-in policy is compiled into the binary from requirements.yaml and is
// not configurable at runtime:
//
//	chrome ≥ 61, edge ≥ 16, firefox ≥ 60, opera ≥ 47, safari ≥ 10.1
//
// # Usage
//
//	id, err := useragent.Parse(r.UserAgent())
//	if err == nil && admission.Default().Admit(id) {
//	    // supported browser
//	}
//
// Custom policies are built with New or decoded from YAML with Decode.
package admission
