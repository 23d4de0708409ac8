package shikimori

// Anime is the full anime record as returned by the search query.
type Anime struct {
	ID            ID       `json:"id"`
	MalID         *ID      `json:"malId"`
	Name          string   `json:"name"`
	Russian       *string  `json:"russian"`
	LicenseNameRu *string  `json:"licenseNameRu"`
	English       *string  `json:"english"`
	Japanese      *string  `json:"japanese"`
	Synonyms      []string `json:"synonyms"`

	// Kind is one of tv, movie, ova, ona, special, music.
	Kind *string `json:"kind"`
	// Rating is the age rating: g, pg, pg_13, r, r_plus, rx.
	Rating *string  `json:"rating"`
	Score  *float64 `json:"score"`
	// Status is one of anons, ongoing, released.
	Status *string `json:"status"`

	Episodes      *int  `json:"episodes"`
	EpisodesAired *int  `json:"episodesAired"`
	Duration      *int  `json:"duration"`
	AiredOn       *Date `json:"airedOn"`
	ReleasedOn    *Date `json:"releasedOn"`

	URL    *string `json:"url"`
	Season *string `json:"season"`
	Poster *Poster `json:"poster"`

	Fansubbers []string `json:"fansubbers"`
	Fandubbers []string `json:"fandubbers"`
	Licensors  []string `json:"licensors"`

	CreatedAt     *string `json:"createdAt"`
	UpdatedAt     *string `json:"updatedAt"`
	NextEpisodeAt *string `json:"nextEpisodeAt"`
	IsCensored    *bool   `json:"isCensored"`

	Genres         []Genre         `json:"genres"`
	Studios        []Studio        `json:"studios"`
	ExternalLinks  []ExternalLink  `json:"externalLinks"`
	PersonRoles    []PersonRole    `json:"personRoles"`
	CharacterRoles []CharacterRole `json:"characterRoles"`
	Related        []Related       `json:"related"`
	Videos         []Video         `json:"videos"`
	Screenshots    []Screenshot    `json:"screenshots"`
	ScoresStats    []ScoreStat     `json:"scoresStats"`
	StatusesStats  []StatusStat    `json:"statusesStats"`

	Description       *string `json:"description"`
	DescriptionHTML   *string `json:"descriptionHtml"`
	DescriptionSource *string `json:"descriptionSource"`
}

// Title returns the best display title: the English name when present,
// otherwise the canonical romaji name.
func (a *Anime) Title() string {
	if a.English != nil && *a.English != "" {
		return *a.English
	}
	return a.Name
}
