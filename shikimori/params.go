package shikimori

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/shikigo-cli/shikigo/graphql"
)

// Page-size bounds accepted by every search kind. Shikimori silently clamps
// larger pages, so the client rejects them up front instead.
const (
	MinLimit = 1
	MaxLimit = 50
	MinPage  = 1
)

// TargetType narrows a user-rate search to one media type.
type TargetType string

const (
	TargetAnime TargetType = "Anime"
	TargetManga TargetType = "Manga"
)

// OrderField names the user-rate list attribute to sort by.
type OrderField string

const (
	OrderByID        OrderField = "id"
	OrderByUpdatedAt OrderField = "updated_at"
	OrderByCreatedAt OrderField = "created_at"
)

// OrderDirection is the sort direction of a user-rate search.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

// AnimeSearchParams filters an anime search. Every field is optional; absent
// fields are left out of the request entirely so the server applies its own
// defaults.
type AnimeSearchParams struct {
	// Search is a free-text title query.
	Search mo.Option[string]
	// IDs is a comma-separated list of Shikimori ids.
	IDs mo.Option[string]
	// Limit is the page size, 1 to 50.
	Limit mo.Option[int]
	// Kind filters by release type: tv, movie, ova, ona, special, music.
	Kind mo.Option[string]
	// Page is the 1-based page number.
	Page mo.Option[int]
}

// Validate checks the local constraints without touching the network.
func (p AnimeSearchParams) Validate() error {
	if err := validateLimit(p.Limit); err != nil {
		return err
	}
	return validatePage(p.Page)
}

func (p AnimeSearchParams) variables() map[string]any {
	vars := map[string]any{}
	putOpt(vars, "search", p.Search)
	putOpt(vars, "ids", p.IDs)
	putOpt(vars, "limit", p.Limit)
	putOpt(vars, "kind", p.Kind)
	putOpt(vars, "page", p.Page)
	return vars
}

// MangaSearchParams filters a manga search. Every field is optional; absent
// fields are left out of the request entirely.
type MangaSearchParams struct {
	// Search is a free-text title query.
	Search mo.Option[string]
	// IDs is a comma-separated list of Shikimori ids.
	IDs mo.Option[string]
	// Limit is the page size, 1 to 50.
	Limit mo.Option[int]
	// Kind filters by print type: manga, manhwa, manhua, light_novel, novel, one_shot, doujin.
	Kind mo.Option[string]
	// Page is the 1-based page number.
	Page mo.Option[int]
}

// Validate checks the local constraints without touching the network.
func (p MangaSearchParams) Validate() error {
	if err := validateLimit(p.Limit); err != nil {
		return err
	}
	return validatePage(p.Page)
}

func (p MangaSearchParams) variables() map[string]any {
	vars := map[string]any{}
	putOpt(vars, "search", p.Search)
	putOpt(vars, "ids", p.IDs)
	putOpt(vars, "limit", p.Limit)
	putOpt(vars, "kind", p.Kind)
	putOpt(vars, "page", p.Page)
	return vars
}

// PersonSearchParams filters a people search. The people query takes no page
// argument, so only search text and page size are available.
type PersonSearchParams struct {
	// Search is a free-text name query.
	Search mo.Option[string]
	// Limit is the page size, 1 to 50.
	Limit mo.Option[int]
}

// Validate checks the local constraints without touching the network.
func (p PersonSearchParams) Validate() error {
	return validateLimit(p.Limit)
}

func (p PersonSearchParams) variables() map[string]any {
	vars := map[string]any{}
	putOpt(vars, "search", p.Search)
	putOpt(vars, "limit", p.Limit)
	return vars
}

// CharacterSearchParams selects characters either by page browsing or by an
// explicit id list. The two modes are exclusive: Page and Limit belong to
// browse mode and fail validation when combined with IDs, which runs a
// compact by-ids lookup instead.
type CharacterSearchParams struct {
	// Page is the 1-based page number for browse mode.
	Page mo.Option[int]
	// Limit is the page size for browse mode, 1 to 50.
	Limit mo.Option[int]
	// IDs switches to lookup mode; it must be non-empty when set.
	IDs mo.Option[[]string]
}

// ByIDs reports whether the params select lookup mode.
func (p CharacterSearchParams) ByIDs() bool {
	return p.IDs.IsPresent()
}

// Validate checks the constraints of whichever mode the params select.
func (p CharacterSearchParams) Validate() error {
	if ids, ok := p.IDs.Get(); ok {
		if len(ids) == 0 {
			return graphql.NewValidationError("ids", "must not be empty")
		}
		if p.Page.IsPresent() {
			return graphql.NewValidationError("page", "cannot be combined with ids")
		}
		if p.Limit.IsPresent() {
			return graphql.NewValidationError("limit", "cannot be combined with ids")
		}
		return nil
	}

	if err := validatePage(p.Page); err != nil {
		return err
	}
	return validateLimit(p.Limit)
}

func (p CharacterSearchParams) variables() map[string]any {
	if ids, ok := p.IDs.Get(); ok {
		return map[string]any{"ids": ids}
	}

	vars := map[string]any{}
	putOpt(vars, "page", p.Page)
	putOpt(vars, "limit", p.Limit)
	return vars
}

// UserRateSearchParams filters the authenticated user's list. A sort is
// expressed as OrderField plus an optional Order direction; a direction
// without a field has nothing to apply to and is ignored.
type UserRateSearchParams struct {
	// Page is the 1-based page number.
	Page mo.Option[int]
	// Limit is the page size, 1 to 50.
	Limit mo.Option[int]
	// TargetType narrows the list to anime or manga entries.
	TargetType mo.Option[TargetType]
	// OrderField selects the sort attribute.
	OrderField mo.Option[OrderField]
	// Order selects the sort direction; defaults to descending.
	Order mo.Option[OrderDirection]
}

// Validate checks the local constraints without touching the network.
func (p UserRateSearchParams) Validate() error {
	if err := validatePage(p.Page); err != nil {
		return err
	}
	if err := validateLimit(p.Limit); err != nil {
		return err
	}

	if t, ok := p.TargetType.Get(); ok {
		switch t {
		case TargetAnime, TargetManga:
		default:
			return graphql.NewValidationError("targetType", fmt.Sprintf("must be %q or %q", TargetAnime, TargetManga))
		}
	}

	if f, ok := p.OrderField.Get(); ok {
		switch f {
		case OrderByID, OrderByUpdatedAt, OrderByCreatedAt:
		default:
			return graphql.NewValidationError("orderField", fmt.Sprintf("must be one of %q, %q, %q", OrderByID, OrderByUpdatedAt, OrderByCreatedAt))
		}
	}

	if d, ok := p.Order.Get(); ok {
		switch d {
		case OrderAsc, OrderDesc:
		default:
			return graphql.NewValidationError("order", fmt.Sprintf("must be %q or %q", OrderAsc, OrderDesc))
		}
	}

	return nil
}

func (p UserRateSearchParams) variables() map[string]any {
	vars := map[string]any{}
	putOpt(vars, "page", p.Page)
	putOpt(vars, "limit", p.Limit)

	if t, ok := p.TargetType.Get(); ok {
		vars["targetType"] = string(t)
	}

	if f, ok := p.OrderField.Get(); ok {
		direction := OrderDesc
		if d, ok := p.Order.Get(); ok {
			direction = d
		}
		vars["order"] = map[string]any{
			"field": string(f),
			"order": string(direction),
		}
	}

	return vars
}

// putOpt copies a present optional into the variables map; absent values
// leave no key behind.
func putOpt[T any](vars map[string]any, key string, opt mo.Option[T]) {
	if v, ok := opt.Get(); ok {
		vars[key] = v
	}
}

func validateLimit(limit mo.Option[int]) error {
	if v, ok := limit.Get(); ok && (v < MinLimit || v > MaxLimit) {
		return graphql.NewValidationError("limit", fmt.Sprintf("must be between %d and %d", MinLimit, MaxLimit))
	}
	return nil
}

func validatePage(page mo.Option[int]) error {
	if v, ok := page.Get(); ok && v < MinPage {
		return graphql.NewValidationError("page", fmt.Sprintf("must be at least %d", MinPage))
	}
	return nil
}
