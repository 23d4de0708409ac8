package shikimori

// UserRate is one entry of the authenticated user's list. Exactly one of
// Anime and Manga is set, matching the rate's target type.
type UserRate struct {
	ID        ID            `json:"id"`
	Anime     *RelatedTitle `json:"anime"`
	Manga     *RelatedTitle `json:"manga"`
	CreatedAt *string       `json:"createdAt"`
}
