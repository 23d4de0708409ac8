package shikimori

import (
	"context"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/shikigo-cli/shikigo/log"
	"github.com/shikigo-cli/shikigo/util"
)

// maxFindRetries bounds how many times a query is shortened before giving up.
const maxFindRetries = 3

// normalizedName returns a lowercased, trimmed string for consistent comparison.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FindClosestAnime returns the single anime that best matches the given
// title. When a search yields nothing, the query is shortened word by word
// and retried; results are ranked by edit distance across all known titles
// of each candidate.
func (c *Client) FindClosestAnime(ctx context.Context, name string) (*Anime, error) {
	name = normalizedName(name)
	return c.findClosestAnime(ctx, name, 0)
}

func (c *Client) findClosestAnime(ctx context.Context, name string, try int) (*Anime, error) {
	if try >= maxFindRetries {
		return nil, fmt.Errorf("no results found on Shikimori for anime %q", name)
	}

	animes, err := c.Animes(ctx, AnimeSearchParams{
		Search: mo.Some(name),
		Limit:  mo.Some(MaxLimit),
	})
	if err != nil {
		return nil, err
	}

	if len(animes) == 0 {
		// Shorten the query by dropping the trailing word and retry.
		words := strings.Split(name, " ")
		if len(words) <= 1 {
			return nil, fmt.Errorf("no results found on Shikimori for anime %q", name)
		}

		alternate := strings.Join(words[:util.Max(len(words)-1, 1)], " ")
		log.Infof(`no results for %q, trying %q`, name, alternate)
		return c.findClosestAnime(ctx, alternate, try+1)
	}

	// A fuzzy prefilter narrows the pool to candidates that at least contain
	// the query in order; distance ranking then picks among them.
	pool := lo.Filter(animes, func(a Anime, _ int) bool {
		return lo.SomeBy(candidateTitles(&a), func(title string) bool {
			return fuzzy.MatchNormalizedFold(name, title)
		})
	})
	if len(pool) == 0 {
		pool = animes
	}

	closest := lo.MinBy(pool, func(a, b Anime) bool {
		return titleDistance(name, &a) < titleDistance(name, &b)
	})

	log.Info("found closest match: " + closest.Name)
	return &closest, nil
}

// titleDistance is the smallest edit distance between the query and any of
// the anime's titles.
func titleDistance(name string, a *Anime) int {
	distances := lo.Map(candidateTitles(a), func(title string, _ int) int {
		return levenshtein.Distance(name, normalizedName(title))
	})
	return lo.Min(distances)
}

// candidateTitles collects every non-empty title variant of an anime.
func candidateTitles(a *Anime) []string {
	titles := []string{a.Name}
	if a.English != nil {
		titles = append(titles, *a.English)
	}
	if a.Russian != nil {
		titles = append(titles, *a.Russian)
	}
	if a.Japanese != nil {
		titles = append(titles, *a.Japanese)
	}
	titles = append(titles, a.Synonyms...)

	return lo.Filter(titles, func(title string, _ int) bool {
		return strings.TrimSpace(title) != ""
	})
}
