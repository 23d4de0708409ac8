package shikimori

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFindClosestAnime(t *testing.T) {
	Convey("FindClosestAnime", t, func() {
		Convey("Should rank candidates by edit distance", func() {
			client, _ := newStubClient(`{"data":{"animes":[
				{"id":1,"name":"Death Note Rewrite"},
				{"id":2,"name":"Death Note"},
				{"id":3,"name":"Death Parade"}
			]}}`)

			anime, err := client.FindClosestAnime(context.Background(), "death note")
			So(err, ShouldBeNil)
			So(anime.ID.Int64(), ShouldEqual, 2)
		})

		Convey("Should match against alternate titles", func() {
			client, _ := newStubClient(`{"data":{"animes":[
				{"id":1,"name":"Kimetsu no Yaiba","english":"Demon Slayer: Kimetsu no Yaiba"},
				{"id":2,"name":"Kimi no Na wa"}
			]}}`)

			anime, err := client.FindClosestAnime(context.Background(), "demon slayer kimetsu no yaiba")
			So(err, ShouldBeNil)
			So(anime.ID.Int64(), ShouldEqual, 1)
		})

		Convey("Should shorten the query when a search comes back empty", func() {
			client, transport := newStubClient(
				`{"data":{"animes":[]}}`,
				`{"data":{"animes":[{"id":20,"name":"Naruto"}]}}`,
			)

			anime, err := client.FindClosestAnime(context.Background(), "naruto uncut")
			So(err, ShouldBeNil)
			So(anime.ID.Int64(), ShouldEqual, 20)

			So(transport.requests[0].Variables["search"], ShouldEqual, "naruto uncut")
			So(transport.requests[1].Variables["search"], ShouldEqual, "naruto")
		})

		Convey("Should give up when nothing matches a single word", func() {
			client, transport := newStubClient(`{"data":{"animes":[]}}`)

			_, err := client.FindClosestAnime(context.Background(), "zzzzzz")
			So(err, ShouldNotBeNil)
			So(transport.calls, ShouldEqual, 1)
		})

		Convey("Should normalize the query before searching", func() {
			client, transport := newStubClient(`{"data":{"animes":[{"id":20,"name":"Naruto"}]}}`)

			_, err := client.FindClosestAnime(context.Background(), "  NARUTO  ")
			So(err, ShouldBeNil)
			So(transport.last().Variables["search"], ShouldEqual, "naruto")
		})
	})
}
