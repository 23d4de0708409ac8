package shikimori

import (
	"context"

	"github.com/samber/mo"
)

// Paginator walks search results page by page, fetching lazily as items are
// consumed. It follows the scanner idiom:
//
//	p := client.AnimesPaginated(params)
//	for p.Next(ctx) {
//		use(p.Item())
//	}
//	if err := p.Err(); err != nil { ... }
//
// Iteration ends at the first empty page or the first error.
type Paginator[T any] struct {
	fetchPage func(ctx context.Context, page int) ([]T, error)
	page      int
	buf       []T
	pos       int
	done      bool
	err       error
}

// Next advances to the following item, fetching the next page when the
// current one is exhausted. It returns false when iteration is over; check
// Err to distinguish the end of results from a failure.
func (p *Paginator[T]) Next(ctx context.Context) bool {
	if p.done {
		return false
	}

	p.pos++
	if p.pos < len(p.buf) {
		return true
	}

	// A short page still gets a follow-up fetch: Shikimori pads page sizes
	// inconsistently, so only an empty page is a reliable end marker.
	p.page++
	items, err := p.fetchPage(ctx, p.page)
	if err != nil {
		p.err = err
		p.done = true
		return false
	}
	if len(items) == 0 {
		p.done = true
		return false
	}

	p.buf = items
	p.pos = 0
	return true
}

// Item returns the current item. Only valid after Next returned true.
func (p *Paginator[T]) Item() T {
	return p.buf[p.pos]
}

// Err returns the error that stopped iteration, if any.
func (p *Paginator[T]) Err() error {
	return p.err
}

// exhausted is a paginator that yields nothing, optionally with an error.
func exhausted[T any](err error) *Paginator[T] {
	return &Paginator[T]{done: true, err: err}
}

func newPaginator[T any](startPage mo.Option[int], fetchPage func(ctx context.Context, page int) ([]T, error)) *Paginator[T] {
	return &Paginator[T]{
		fetchPage: fetchPage,
		page:      startPage.OrElse(MinPage) - 1,
		pos:       -1,
	}
}

// AnimesPaginated returns a lazy iterator over every anime matching the
// filters, starting at params.Page (first page when absent).
func (c *Client) AnimesPaginated(params AnimeSearchParams) *Paginator[Anime] {
	if err := params.Validate(); err != nil {
		return exhausted[Anime](err)
	}

	return newPaginator(params.Page, func(ctx context.Context, page int) ([]Anime, error) {
		params.Page = mo.Some(page)
		return c.Animes(ctx, params)
	})
}

// MangasPaginated returns a lazy iterator over every manga matching the
// filters, starting at params.Page (first page when absent).
func (c *Client) MangasPaginated(params MangaSearchParams) *Paginator[Manga] {
	if err := params.Validate(); err != nil {
		return exhausted[Manga](err)
	}

	return newPaginator(params.Page, func(ctx context.Context, page int) ([]Manga, error) {
		params.Page = mo.Some(page)
		return c.Mangas(ctx, params)
	})
}

// CharactersPaginated returns a lazy iterator over characters in browse
// mode. Lookup mode has no pages, so valid params with IDs set yield nothing.
func (c *Client) CharactersPaginated(params CharacterSearchParams) *Paginator[Character] {
	if err := params.Validate(); err != nil {
		return exhausted[Character](err)
	}
	if params.ByIDs() {
		return exhausted[Character](nil)
	}

	return newPaginator(params.Page, func(ctx context.Context, page int) ([]Character, error) {
		params.Page = mo.Some(page)
		return c.Characters(ctx, params)
	})
}

// UserRatesPaginated returns a lazy iterator over the authenticated user's
// list, starting at params.Page (first page when absent).
func (c *Client) UserRatesPaginated(params UserRateSearchParams) *Paginator[UserRate] {
	if err := params.Validate(); err != nil {
		return exhausted[UserRate](err)
	}

	return newPaginator(params.Page, func(ctx context.Context, page int) ([]UserRate, error) {
		params.Page = mo.Some(page)
		return c.UserRates(ctx, params)
	})
}
