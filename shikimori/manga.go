package shikimori

// Manga is the full manga record as returned by the search query. It mirrors
// Anime but carries print-specific fields: volumes, chapters and publishers
// instead of episodes and studios.
type Manga struct {
	ID            ID       `json:"id"`
	MalID         *ID      `json:"malId"`
	Name          string   `json:"name"`
	Russian       *string  `json:"russian"`
	LicenseNameRu *string  `json:"licenseNameRu"`
	English       *string  `json:"english"`
	Japanese      *string  `json:"japanese"`
	Synonyms      []string `json:"synonyms"`

	// Kind is one of manga, manhwa, manhua, light_novel, novel, one_shot, doujin.
	Kind  *string  `json:"kind"`
	Score *float64 `json:"score"`
	// Status is one of anons, ongoing, released.
	Status *string `json:"status"`

	Volumes    *int  `json:"volumes"`
	Chapters   *int  `json:"chapters"`
	AiredOn    *Date `json:"airedOn"`
	ReleasedOn *Date `json:"releasedOn"`

	URL    *string `json:"url"`
	Poster *Poster `json:"poster"`

	Licensors []string `json:"licensors"`

	CreatedAt  *string `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt"`
	IsCensored *bool   `json:"isCensored"`

	Genres         []Genre         `json:"genres"`
	Publishers     []Publisher     `json:"publishers"`
	ExternalLinks  []ExternalLink  `json:"externalLinks"`
	PersonRoles    []PersonRole    `json:"personRoles"`
	CharacterRoles []CharacterRole `json:"characterRoles"`
	Related        []Related       `json:"related"`
	ScoresStats    []ScoreStat     `json:"scoresStats"`
	StatusesStats  []StatusStat    `json:"statusesStats"`

	Description       *string `json:"description"`
	DescriptionHTML   *string `json:"descriptionHtml"`
	DescriptionSource *string `json:"descriptionSource"`
}

// Title returns the best display title: the English name when present,
// otherwise the canonical romaji name.
func (m *Manga) Title() string {
	if m.English != nil && *m.English != "" {
		return *m.English
	}
	return m.Name
}
