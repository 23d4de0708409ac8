// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Shikimori API Client - these keys configure the GraphQL endpoint and its resilience policy.
const (
	ShikimoriURL               = "shikimori.url"
	ShikimoriTimeout           = "shikimori.timeout"
	ShikimoriMaxRetries        = "shikimori.max_retries"
	ShikimoriBaseBackoff       = "shikimori.base_backoff"
	ShikimoriBrowserTLS        = "shikimori.browser_tls"
	ShikimoriDefaultRetryAfter = "shikimori.default_retry_after"
)

// Search Behavior - these keys define defaults applied by the CLI search commands.
const (
	SearchLimit = "search.limit"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern presentation of command output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
