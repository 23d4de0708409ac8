// Package cmd implements the command-line interface for shikigo.
package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shikigo-cli/shikigo/auth"
	"github.com/shikigo-cli/shikigo/key"
	"github.com/shikigo-cli/shikigo/shikimori"
	"github.com/shikigo-cli/shikigo/util"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchAnimeCmd)
	searchCmd.AddCommand(searchMangaCmd)
	searchCmd.AddCommand(searchCharacterCmd)
	searchCmd.AddCommand(searchPersonCmd)
	searchCmd.AddCommand(searchRatesCmd)

	for _, cmd := range []*cobra.Command{searchAnimeCmd, searchMangaCmd, searchCharacterCmd, searchPersonCmd, searchRatesCmd} {
		cmd.Flags().IntP("limit", "l", 0, "Number of results per page (1-50)")
		cmd.Flags().BoolP("json", "j", false, "Print raw JSON instead of formatted output")
	}

	for _, cmd := range []*cobra.Command{searchAnimeCmd, searchMangaCmd, searchCharacterCmd, searchRatesCmd} {
		cmd.Flags().IntP("page", "p", 0, "Page number to fetch (starts at 1)")
		cmd.Flags().Bool("all", false, "Walk every page instead of a single one")
	}

	searchAnimeCmd.Flags().StringP("kind", "k", "", "Filter by kind: tv, movie, ova, ona, special, music")
	searchAnimeCmd.Flags().String("ids", "", "Comma-separated list of Shikimori ids")
	searchAnimeCmd.Flags().BoolP("closest", "c", false, "Return only the single best title match")

	searchMangaCmd.Flags().StringP("kind", "k", "", "Filter by kind: manga, manhwa, manhua, light_novel, novel, one_shot, doujin")
	searchMangaCmd.Flags().String("ids", "", "Comma-separated list of Shikimori ids")

	searchCharacterCmd.Flags().StringSlice("ids", []string{}, "Look up characters by id instead of browsing")

	searchRatesCmd.Flags().StringP("target", "t", "", "Narrow to one media type: Anime or Manga")
	searchRatesCmd.Flags().String("order-by", "", "Sort field: id, updated_at, created_at")
	searchRatesCmd.Flags().String("order", "", "Sort direction: asc or desc")
}

// searchCmd groups the per-kind Shikimori search commands.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the Shikimori database",
}

var searchAnimeCmd = &cobra.Command{
	Use:     "anime [query]",
	Short:   "Search anime by title, kind, or explicit ids",
	Args:    cobra.ArbitraryArgs,
	Example: "  shikigo search anime naruto --kind tv --limit 5",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := searchContext()
		defer cancel()

		client := newClient()
		params := shikimori.AnimeSearchParams{
			Limit: limitOption(cmd),
			Page:  intOption(cmd, "page"),
			Kind:  stringOption(cmd, "kind"),
			IDs:   stringOption(cmd, "ids"),
		}
		if params.IDs.IsAbsent() {
			params.Search = mo.Some(queryFromArgs(cmd, args))
		}

		if lo.Must(cmd.Flags().GetBool("closest")) {
			anime, err := client.FindClosestAnime(ctx, params.Search.OrElse(""))
			handleErr(err)
			printResults(cmd, []shikimori.Anime{*anime}, renderAnime)
			return
		}

		if lo.Must(cmd.Flags().GetBool("all")) {
			animes, err := collect(ctx, client.AnimesPaginated(params))
			handleErr(err)
			printResults(cmd, animes, renderAnime)
			return
		}

		animes, err := client.Animes(ctx, params)
		handleErr(err)
		printResults(cmd, animes, renderAnime)
	},
}

var searchMangaCmd = &cobra.Command{
	Use:     "manga [query]",
	Short:   "Search manga by title, kind, or explicit ids",
	Args:    cobra.ArbitraryArgs,
	Example: "  shikigo search manga berserk --kind manga",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := searchContext()
		defer cancel()

		client := newClient()
		params := shikimori.MangaSearchParams{
			Limit: limitOption(cmd),
			Page:  intOption(cmd, "page"),
			Kind:  stringOption(cmd, "kind"),
			IDs:   stringOption(cmd, "ids"),
		}
		if params.IDs.IsAbsent() {
			params.Search = mo.Some(queryFromArgs(cmd, args))
		}

		if lo.Must(cmd.Flags().GetBool("all")) {
			mangas, err := collect(ctx, client.MangasPaginated(params))
			handleErr(err)
			printResults(cmd, mangas, renderManga)
			return
		}

		mangas, err := client.Mangas(ctx, params)
		handleErr(err)
		printResults(cmd, mangas, renderManga)
	},
}

var searchCharacterCmd = &cobra.Command{
	Use:     "character",
	Short:   "Browse characters page by page, or look them up by id",
	Example: "  shikigo search character --ids 40,62",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := searchContext()
		defer cancel()

		client := newClient()
		var params shikimori.CharacterSearchParams
		if ids := lo.Must(cmd.Flags().GetStringSlice("ids")); len(ids) > 0 {
			// Lookup mode: page and limit are browse-mode filters and would
			// fail validation alongside ids.
			params.IDs = mo.Some(ids)
		} else {
			params.Limit = limitOption(cmd)
			params.Page = intOption(cmd, "page")
		}

		if lo.Must(cmd.Flags().GetBool("all")) && !params.ByIDs() {
			characters, err := collect(ctx, client.CharactersPaginated(params))
			handleErr(err)
			printResults(cmd, characters, renderCharacter)
			return
		}

		characters, err := client.Characters(ctx, params)
		handleErr(err)
		printResults(cmd, characters, renderCharacter)
	},
}

var searchPersonCmd = &cobra.Command{
	Use:     "person [query]",
	Short:   "Search seiyu, mangaka, producers and other industry people",
	Args:    cobra.ArbitraryArgs,
	Example: "  shikigo search person miyazaki",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := searchContext()
		defer cancel()

		client := newClient()
		params := shikimori.PersonSearchParams{
			Search: mo.Some(queryFromArgs(cmd, args)),
			Limit:  limitOption(cmd),
		}

		people, err := client.People(ctx, params)
		handleErr(err)
		printResults(cmd, people, renderPerson)
	},
}

var searchRatesCmd = &cobra.Command{
	Use:     "rates",
	Short:   "List entries of your anime/manga list (requires an auth token)",
	Example: "  shikigo search rates --target Anime --order-by updated_at",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := searchContext()
		defer cancel()

		client := newClient()
		params := shikimori.UserRateSearchParams{
			Limit: limitOption(cmd),
			Page:  intOption(cmd, "page"),
		}
		if t, ok := stringOption(cmd, "target").Get(); ok {
			params.TargetType = mo.Some(shikimori.TargetType(t))
		}
		if f, ok := stringOption(cmd, "order-by").Get(); ok {
			params.OrderField = mo.Some(shikimori.OrderField(f))
		}
		if d, ok := stringOption(cmd, "order").Get(); ok {
			params.Order = mo.Some(shikimori.OrderDirection(d))
		}

		if lo.Must(cmd.Flags().GetBool("all")) {
			rates, err := collect(ctx, client.UserRatesPaginated(params))
			handleErr(err)
			printResults(cmd, rates, renderUserRate)
			return
		}

		rates, err := client.UserRates(ctx, params)
		handleErr(err)
		printResults(cmd, rates, renderUserRate)
	},
}

// searchContext cancels in-flight attempts and backoff waits on Ctrl-C.
func searchContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func newClient() *shikimori.Client {
	return shikimori.New(shikimori.WithToken(auth.Token()))
}

// queryFromArgs joins the positional arguments into a query, falling back to
// an interactive prompt when none were given.
func queryFromArgs(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}

	var query string
	handleErr(survey.AskOne(
		&survey.Input{Message: "Search query:"},
		&query,
		survey.WithValidator(survey.Required),
	))
	return query
}

// limitOption resolves the page size: the flag when given, the configured
// default otherwise.
func limitOption(cmd *cobra.Command) mo.Option[int] {
	if cmd.Flags().Changed("limit") {
		return mo.Some(lo.Must(cmd.Flags().GetInt("limit")))
	}
	return mo.Some(viper.GetInt(key.SearchLimit))
}

func intOption(cmd *cobra.Command, name string) mo.Option[int] {
	if cmd.Flags().Changed(name) {
		return mo.Some(lo.Must(cmd.Flags().GetInt(name)))
	}
	return mo.None[int]()
}

func stringOption(cmd *cobra.Command, name string) mo.Option[string] {
	if cmd.Flags().Changed(name) {
		return mo.Some(lo.Must(cmd.Flags().GetString(name)))
	}
	return mo.None[string]()
}

// collect drains a paginator into a slice.
func collect[T any](ctx context.Context, p *shikimori.Paginator[T]) ([]T, error) {
	var items []T
	for p.Next(ctx) {
		items = append(items, p.Item())
	}
	return items, p.Err()
}

// printResults renders entities either as formatted blocks or as raw JSON.
func printResults[T any](cmd *cobra.Command, items []T, render func(T) string) {
	if lo.Must(cmd.Flags().GetBool("json")) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(items))
		return
	}

	if len(items) == 0 {
		cmd.Println("No results.")
		return
	}

	for i, item := range items {
		cmd.Print(render(item))
		if i < len(items)-1 {
			cmd.Println()
		}
	}

	cmd.Println()
	cmd.Println(util.Quantify(len(items), "result", "results"))
}
