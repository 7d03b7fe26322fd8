package useragent

// Normalized browser names as produced by Parse.
const (
	BrowserChrome           = "chrome"
	BrowserEdge             = "edge"
	BrowserFirefox          = "firefox"
	BrowserOpera            = "opera"
	BrowserSafari           = "safari"
	BrowserInternetExplorer = "internet explorer"
)

// Rule names, in evaluation order of DefaultRules.
const (
	RuleTrident     = "trident"
	RuleEdgeAsOpera = "edge-as-opera"
	RuleProduct     = "product"
)
