// Package shikimori provides a typed client for the Shikimori GraphQL API.
// Searches take typed parameter structs, are validated locally, and run
// through a retrying transport that absorbs rate limits and transient
// failures before decoded entities are returned.
package shikimori

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/shikigo-cli/shikigo/constant"
	"github.com/shikigo-cli/shikigo/graphql"
	"github.com/shikigo-cli/shikigo/key"
	"github.com/shikigo-cli/shikigo/network"
)

// Client is the entry point for all Shikimori searches. It is safe for
// concurrent use; every call runs through its own retry state.
type Client struct {
	executor *graphql.Executor
}

type options struct {
	url        string
	httpClient *http.Client
	token      string
	userAgent  string
	headers    map[string]string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	retryAfter time.Duration
	transport  graphql.Transport
}

// Option tunes a Client at construction time.
type Option func(*options)

// WithBaseURL overrides the GraphQL endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) { o.url = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithToken attaches a bearer token to every request.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithHeader adds a static header to every request.
func WithHeader(name, value string) Option {
	return func(o *options) {
		if o.headers == nil {
			o.headers = map[string]string{}
		}
		o.headers[name] = value
	}
}

// WithTimeout overrides the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithMaxRetries overrides how many additional attempts follow a transient
// failure. Negative values select the default.
func WithMaxRetries(retries int) Option {
	return func(o *options) { o.maxRetries = retries }
}

// WithBaseBackoff overrides the first retry delay; later delays double it.
func WithBaseBackoff(backoff time.Duration) Option {
	return func(o *options) { o.backoff = backoff }
}

// WithTransport replaces the HTTP layer entirely. Used by tests.
func WithTransport(transport graphql.Transport) Option {
	return func(o *options) { o.transport = transport }
}

// New builds a Client. Unset options fall back to configuration values and
// then to built-in defaults, so New() with no arguments yields a working
// client against the public API.
func New(opts ...Option) *Client {
	o := options{
		url:        viper.GetString(key.ShikimoriURL),
		timeout:    viper.GetDuration(key.ShikimoriTimeout),
		maxRetries: -1,
		backoff:    viper.GetDuration(key.ShikimoriBaseBackoff),
		retryAfter: viper.GetDuration(key.ShikimoriDefaultRetryAfter),
	}
	if viper.IsSet(key.ShikimoriMaxRetries) {
		o.maxRetries = viper.GetInt(key.ShikimoriMaxRetries)
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.url == "" {
		o.url = constant.APIEndpoint
	}
	if o.httpClient == nil {
		if viper.GetBool(key.ShikimoriBrowserTLS) {
			o.httpClient = network.BrowserClient()
		} else {
			o.httpClient = network.Client
		}
	}

	headers := browserHeaders(o.token)
	if o.userAgent != "" {
		headers["User-Agent"] = o.userAgent
	}
	for name, value := range o.headers {
		headers[name] = value
	}

	transport := o.transport
	if transport == nil {
		transport = graphql.NewHTTPTransport(graphql.HTTPTransportConfig{
			URL:               o.url,
			Client:            o.httpClient,
			Headers:           headers,
			Timeout:           o.timeout,
			RetryAfterDefault: o.retryAfter,
		})
	}

	return &Client{
		executor: graphql.NewExecutor(transport, graphql.ExecutorConfig{
			MaxRetries:  o.maxRetries,
			BaseBackoff: o.backoff,
		}),
	}
}

// browserHeaders mimics the headers a browser sends from the Shikimori web
// app. The API occasionally rejects bare clients, so the origin triple and a
// desktop user agent go on every request.
func browserHeaders(token string) map[string]string {
	headers := map[string]string{
		"Origin":           constant.SiteOrigin,
		"Referer":          constant.SiteOrigin + "/",
		"X-Requested-With": "XMLHttpRequest",
		"User-Agent":       constant.UserAgent,
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

// Animes searches anime matching the given filters.
func (c *Client) Animes(ctx context.Context, params AnimeSearchParams) ([]Anime, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return fetch[Anime](ctx, c, searchAnimesQuery, params.variables(), "animes")
}

// Mangas searches manga matching the given filters.
func (c *Client) Mangas(ctx context.Context, params MangaSearchParams) ([]Manga, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// The kind filter needs its own document so $kind is only declared when set.
	query := searchMangasQuery
	if params.Kind.IsPresent() {
		query = searchMangasWithKindQuery
	}

	return fetch[Manga](ctx, c, query, params.variables(), "mangas")
}

// People searches industry people matching the given filters.
func (c *Client) People(ctx context.Context, params PersonSearchParams) ([]Person, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return fetch[Person](ctx, c, searchPeopleQuery, params.variables(), "people")
}

// Characters searches characters. With IDs set it performs a compact by-id
// lookup (Name only); otherwise it browses full records page by page.
func (c *Client) Characters(ctx context.Context, params CharacterSearchParams) ([]Character, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	query := searchCharactersQuery
	if params.ByIDs() {
		query = charactersByIDsQuery
	}

	return fetch[Character](ctx, c, query, params.variables(), "characters")
}

// UserRates lists entries of the authenticated user's anime/manga list.
func (c *Client) UserRates(ctx context.Context, params UserRateSearchParams) ([]UserRate, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return fetch[UserRate](ctx, c, searchUserRatesQuery, params.variables(), "userRates")
}

// fetch runs one resilient call and decodes the named collection out of the
// response data. A missing key or null collection decodes to an empty slice;
// a malformed collection is a decode error.
func fetch[T any](ctx context.Context, c *Client, query string, vars map[string]any, responseKey string) ([]T, error) {
	body, err := c.executor.Execute(ctx, graphql.NewRequest(query, vars))
	if err != nil {
		return nil, err
	}

	data, err := graphql.DecodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &graphql.Error{Kind: graphql.KindDecode, Reason: "response data is not an object", Err: err}
	}

	raw, ok := payload[responseKey]
	if !ok || string(raw) == "null" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &graphql.Error{Kind: graphql.KindDecode, Reason: fmt.Sprintf("unexpected shape under %q", responseKey), Err: err}
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}
