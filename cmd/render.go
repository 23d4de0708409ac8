// Package cmd implements the command-line interface for shikigo.
package cmd

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"

	"github.com/shikigo-cli/shikigo/color"
	"github.com/shikigo-cli/shikigo/shikimori"
	"github.com/shikigo-cli/shikigo/style"
	"github.com/shikigo-cli/shikigo/util"
)

const fallbackWidth = 80

// renderWidth returns the wrap width for description text.
func renderWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return util.Min(width, 100)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// line appends a labeled value to the builder, skipping empty values.
func line(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", style.Faint(label+":"), value)
}

func renderTitle(b *strings.Builder, name string, russian *string, id shikimori.ID) {
	fmt.Fprintf(b, "%s %s\n",
		style.New().Bold(true).Foreground(color.HiPurple).Render(name),
		style.Faint("#"+id.String()),
	)
	if r := deref(russian); r != "" {
		fmt.Fprintf(b, "  %s\n", style.Faint(r))
	}
}

func renderDescription(b *strings.Builder, description *string) {
	if d := deref(description); d != "" {
		wrapped := wordwrap.String(d, renderWidth()-2)
		for _, l := range strings.Split(wrapped, "\n") {
			fmt.Fprintf(b, "  %s\n", l)
		}
	}
}

func genreNames(genres []shikimori.Genre) string {
	return strings.Join(lo.Map(genres, func(g shikimori.Genre, _ int) string {
		return g.Name
	}), ", ")
}

func renderAnime(a shikimori.Anime) string {
	var b strings.Builder
	renderTitle(&b, a.Name, a.Russian, a.ID)

	line(&b, "Kind", deref(a.Kind))
	line(&b, "Status", deref(a.Status))
	if a.Score != nil {
		line(&b, "Score", style.Fg(color.Yellow)(fmt.Sprintf("%.2f", *a.Score)))
	}
	if a.Episodes != nil && *a.Episodes > 0 {
		aired := ""
		if a.EpisodesAired != nil {
			aired = fmt.Sprintf("%d/", *a.EpisodesAired)
		}
		line(&b, "Episodes", fmt.Sprintf("%s%d", aired, *a.Episodes))
	}
	line(&b, "Genres", genreNames(a.Genres))
	if len(a.Studios) > 0 {
		line(&b, "Studios", strings.Join(lo.Map(a.Studios, func(s shikimori.Studio, _ int) string {
			return s.Name
		}), ", "))
	}
	line(&b, "URL", style.Fg(color.Blue)(deref(a.URL)))
	renderDescription(&b, a.Description)

	return b.String()
}

func renderManga(m shikimori.Manga) string {
	var b strings.Builder
	renderTitle(&b, m.Name, m.Russian, m.ID)

	line(&b, "Kind", deref(m.Kind))
	line(&b, "Status", deref(m.Status))
	if m.Score != nil {
		line(&b, "Score", style.Fg(color.Yellow)(fmt.Sprintf("%.2f", *m.Score)))
	}
	if m.Volumes != nil && *m.Volumes > 0 {
		line(&b, "Volumes", fmt.Sprint(*m.Volumes))
	}
	if m.Chapters != nil && *m.Chapters > 0 {
		line(&b, "Chapters", fmt.Sprint(*m.Chapters))
	}
	line(&b, "Genres", genreNames(m.Genres))
	line(&b, "URL", style.Fg(color.Blue)(deref(m.URL)))
	renderDescription(&b, m.Description)

	return b.String()
}

func renderCharacter(c shikimori.Character) string {
	var b strings.Builder
	renderTitle(&b, c.Name, c.Russian, c.ID)

	line(&b, "Japanese", deref(c.Japanese))
	line(&b, "URL", style.Fg(color.Blue)(deref(c.URL)))
	renderDescription(&b, c.Description)

	return b.String()
}

func renderPerson(p shikimori.Person) string {
	var b strings.Builder
	renderTitle(&b, p.Name, p.Russian, p.ID)

	var roles []string
	if p.IsSeyu != nil && *p.IsSeyu {
		roles = append(roles, "seiyu")
	}
	if p.IsMangaka != nil && *p.IsMangaka {
		roles = append(roles, "mangaka")
	}
	if p.IsProducer != nil && *p.IsProducer {
		roles = append(roles, "producer")
	}
	line(&b, "Roles", strings.Join(roles, ", "))

	if p.BirthOn != nil && p.BirthOn.Year != nil {
		line(&b, "Born", fmt.Sprint(*p.BirthOn.Year))
	}
	line(&b, "Website", style.Fg(color.Blue)(deref(p.Website)))
	line(&b, "URL", style.Fg(color.Blue)(deref(p.URL)))

	return b.String()
}

func renderUserRate(r shikimori.UserRate) string {
	var b strings.Builder

	target := "?"
	if r.Anime != nil && r.Anime.Name != nil {
		target = *r.Anime.Name + " " + style.Faint("(anime)")
	} else if r.Manga != nil && r.Manga.Name != nil {
		target = *r.Manga.Name + " " + style.Faint("(manga)")
	}

	fmt.Fprintf(&b, "%s %s\n",
		style.New().Bold(true).Foreground(color.HiPurple).Render(target),
		style.Faint("#"+r.ID.String()),
	)
	line(&b, "Added", deref(r.CreatedAt))

	return b.String()
}
