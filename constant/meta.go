// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Shikigo is the canonical application identifier used for filesystem paths and CLI branding.
	Shikigo = "shikigo"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// APIEndpoint is the production Shikimori GraphQL endpoint.
	APIEndpoint = "https://shikimori.one/api/graphql"

	// SiteOrigin is the Shikimori site origin, sent as Origin/Referer on API requests.
	SiteOrigin = "https://shikimori.one"

	// UserAgent is the default HTTP User-Agent string used for requests to the Shikimori API.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden at link time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
