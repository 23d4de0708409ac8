package shikimori

import "fmt"

// dateSubquery defines the selection set for partial dates.
var dateSubquery = `
year
month
day
date
`

// posterSubquery defines the selection set for entity posters.
var posterSubquery = `
id
originalUrl
mainUrl
`

// rolesSubquery defines the shared selection set for person and character
// roles attached to a title.
var rolesSubquery = `
personRoles {
	id
	rolesRu
	rolesEn
	person {
		id
		name
		poster {
			id
		}
	}
}
characterRoles {
	id
	rolesRu
	rolesEn
	character {
		id
		name
		poster {
			id
		}
	}
}
`

// relatedSubquery defines the selection set for relations to other titles.
var relatedSubquery = `
related {
	id
	anime {
		id
		name
	}
	manga {
		id
		name
	}
	relationKind
	relationText
}
`

// statsSubquery defines the selection set for score and status distributions.
var statsSubquery = `
scoresStats {
	score
	count
}
statusesStats {
	status
	count
}
`

// animeSubquery defines the full selection set for anime metadata retrieval.
var animeSubquery = fmt.Sprintf(`
id
malId
name
russian
licenseNameRu
english
japanese
synonyms
kind
rating
score
status
episodes
episodesAired
duration
airedOn {
	%[1]s
}
releasedOn {
	%[1]s
}
url
season
poster {
	%[2]s
}
fansubbers
fandubbers
licensors
createdAt
updatedAt
nextEpisodeAt
isCensored
genres {
	id
	name
	russian
	kind
}
studios {
	id
	name
	imageUrl
}
externalLinks {
	id
	kind
	url
	createdAt
	updatedAt
}
%[3]s
%[4]s
videos {
	id
	url
	name
	kind
	playerUrl
	imageUrl
}
screenshots {
	id
	originalUrl
	x166Url
	x332Url
}
%[5]s
description
descriptionHtml
descriptionSource
`, dateSubquery, posterSubquery, rolesSubquery, relatedSubquery, statsSubquery)

// mangaSubquery defines the full selection set for manga metadata retrieval.
var mangaSubquery = fmt.Sprintf(`
id
malId
name
russian
licenseNameRu
english
japanese
synonyms
kind
score
status
volumes
chapters
airedOn {
	%[1]s
}
releasedOn {
	%[1]s
}
url
poster {
	%[2]s
}
licensors
createdAt
updatedAt
isCensored
genres {
	id
	name
	russian
	kind
}
publishers {
	id
	name
}
externalLinks {
	id
	kind
	url
	createdAt
	updatedAt
}
%[3]s
%[4]s
%[5]s
description
descriptionHtml
descriptionSource
`, dateSubquery, posterSubquery, rolesSubquery, relatedSubquery, statsSubquery)

// searchAnimesQuery retrieves a page of anime matching the given filters.
var searchAnimesQuery = fmt.Sprintf(`
query SearchAnimes($search: String, $ids: String, $limit: Int, $page: Int, $kind: AnimeKindString) {
	animes(search: $search, ids: $ids, limit: $limit, page: $page, kind: $kind) {
		%s
	}
}`, animeSubquery)

// searchMangasQuery retrieves a page of manga matching the given filters.
var searchMangasQuery = fmt.Sprintf(`
query SearchMangas($search: String, $ids: String, $limit: Int, $page: Int) {
	mangas(search: $search, ids: $ids, limit: $limit, page: $page) {
		%s
	}
}`, mangaSubquery)

// searchMangasWithKindQuery is the manga search with the kind filter applied.
// It is a separate document because the $kind variable must not be declared
// when no kind is passed.
var searchMangasWithKindQuery = fmt.Sprintf(`
query SearchMangas($search: String, $ids: String, $limit: Int, $page: Int, $kind: MangaKindString) {
	mangas(search: $search, ids: $ids, limit: $limit, page: $page, kind: $kind) {
		%s
	}
}`, mangaSubquery)

// searchPeopleQuery retrieves a page of people matching the given name.
var searchPeopleQuery = fmt.Sprintf(`
query SearchPeople($search: String, $limit: Int) {
	people(search: $search, limit: $limit) {
		id
		malId
		name
		russian
		japanese
		synonyms
		url
		isSeyu
		isMangaka
		isProducer
		website
		createdAt
		updatedAt
		birthOn {
			%[1]s
		}
		deceasedOn {
			%[1]s
		}
		poster {
			%[2]s
		}
	}
}`, dateSubquery, posterSubquery)

// searchCharactersQuery retrieves a page of characters in browse mode.
var searchCharactersQuery = fmt.Sprintf(`
query SearchCharacters($page: Int, $limit: Int) {
	characters(page: $page, limit: $limit) {
		id
		malId
		name
		russian
		japanese
		synonyms
		url
		createdAt
		updatedAt
		isAnime
		isManga
		isRanobe
		poster {
			%s
		}
		description
		descriptionHtml
		descriptionSource
	}
}`, posterSubquery)

// charactersByIDsQuery is the compact lookup used when an explicit id list
// is given.
var charactersByIDsQuery = `
query GetCharactersByIds($ids: [ID!]) {
	characters(ids: $ids) {
		id
		name
	}
}`

// searchUserRatesQuery retrieves a page of the authenticated user's list.
var searchUserRatesQuery = `
query SearchUserRates($page: Int, $limit: Int, $targetType: TargetType, $order: UserRateOrder) {
	userRates(page: $page, limit: $limit, targetType: $targetType, order: $order) {
		id
		anime {
			id
			name
		}
		manga {
			id
			name
		}
		createdAt
	}
}`
