package shikimori

// Date is a partial calendar date. Shikimori omits components it does not
// know, so all fields are optional; Date is the raw "YYYY-MM-DD" string when
// the full date is known.
type Date struct {
	Year  *int    `json:"year"`
	Month *int    `json:"month"`
	Day   *int    `json:"day"`
	Date  *string `json:"date"`
}

// Poster carries image URLs for an entity.
type Poster struct {
	ID          *ID     `json:"id"`
	OriginalURL *string `json:"originalUrl"`
	MainURL     *string `json:"mainUrl"`
}

type Genre struct {
	ID      ID      `json:"id"`
	Name    string  `json:"name"`
	Russian *string `json:"russian"`
	Kind    *string `json:"kind"`
}

type Studio struct {
	ID       ID      `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

type Publisher struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type ExternalLink struct {
	ID        *ID     `json:"id"`
	Kind      string  `json:"kind"`
	URL       string  `json:"url"`
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
}

// PersonRef is the compact person shape embedded in role listings.
type PersonRef struct {
	ID     ID      `json:"id"`
	Name   string  `json:"name"`
	Poster *Poster `json:"poster"`
}

type PersonRole struct {
	ID      ID        `json:"id"`
	RolesRu []string  `json:"rolesRu"`
	RolesEn []string  `json:"rolesEn"`
	Person  PersonRef `json:"person"`
}

// CharacterRef is the compact character shape embedded in role listings and
// in the characters-by-ids lookup.
type CharacterRef struct {
	ID     ID      `json:"id"`
	Name   string  `json:"name"`
	Poster *Poster `json:"poster"`
}

type CharacterRole struct {
	ID        ID           `json:"id"`
	RolesRu   []string     `json:"rolesRu"`
	RolesEn   []string     `json:"rolesEn"`
	Character CharacterRef `json:"character"`
}

// RelatedTitle is the compact anime/manga shape inside a relation.
type RelatedTitle struct {
	ID   *ID     `json:"id"`
	Name *string `json:"name"`
}

// Related links an entity to a sequel, prequel, adaptation and so on. Exactly
// one of Anime and Manga is set.
type Related struct {
	ID           ID            `json:"id"`
	Anime        *RelatedTitle `json:"anime"`
	Manga        *RelatedTitle `json:"manga"`
	RelationKind string        `json:"relationKind"`
	RelationText *string       `json:"relationText"`
}

type Video struct {
	ID        ID      `json:"id"`
	URL       *string `json:"url"`
	Name      *string `json:"name"`
	Kind      *string `json:"kind"`
	PlayerURL *string `json:"playerUrl"`
	ImageURL  *string `json:"imageUrl"`
}

type Screenshot struct {
	ID          ID      `json:"id"`
	OriginalURL *string `json:"originalUrl"`
	X166URL     *string `json:"x166Url"`
	X332URL     *string `json:"x332Url"`
}

// ScoreStat is one bucket of the score distribution.
type ScoreStat struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// StatusStat is one bucket of the watch/read status distribution.
type StatusStat struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
