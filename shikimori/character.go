package shikimori

// Character is the full character record as returned by the search query.
// The by-ids lookup returns the compact CharacterRef shape instead.
type Character struct {
	ID       ID       `json:"id"`
	MalID    *ID      `json:"malId"`
	Name     string   `json:"name"`
	Russian  *string  `json:"russian"`
	Japanese *string  `json:"japanese"`
	Synonyms []string `json:"synonyms"`

	URL       *string `json:"url"`
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`

	IsAnime  *bool `json:"isAnime"`
	IsManga  *bool `json:"isManga"`
	IsRanobe *bool `json:"isRanobe"`

	Poster *Poster `json:"poster"`

	Description       *string `json:"description"`
	DescriptionHTML   *string `json:"descriptionHtml"`
	DescriptionSource *string `json:"descriptionSource"`
}
