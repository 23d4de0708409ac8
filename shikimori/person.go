package shikimori

// Person is the full person record: seiyu, mangaka, producers and other
// industry people.
type Person struct {
	ID       ID       `json:"id"`
	MalID    *ID      `json:"malId"`
	Name     string   `json:"name"`
	Russian  *string  `json:"russian"`
	Japanese *string  `json:"japanese"`
	Synonyms []string `json:"synonyms"`

	URL        *string `json:"url"`
	IsSeyu     *bool   `json:"isSeyu"`
	IsMangaka  *bool   `json:"isMangaka"`
	IsProducer *bool   `json:"isProducer"`
	Website    *string `json:"website"`

	CreatedAt  *string `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt"`
	BirthOn    *Date   `json:"birthOn"`
	DeceasedOn *Date   `json:"deceasedOn"`

	Poster *Poster `json:"poster"`
}
