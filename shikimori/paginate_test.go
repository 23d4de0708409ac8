package shikimori

import (
	"context"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/shikigo-cli/shikigo/graphql"
)

func TestAnimesPaginated(t *testing.T) {
	Convey("Client.AnimesPaginated", t, func() {
		Convey("Should walk pages until an empty one", func() {
			client, transport := newStubClient(
				`{"data":{"animes":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}}`,
				`{"data":{"animes":[{"id":3,"name":"c"}]}}`,
				`{"data":{"animes":[]}}`,
			)

			p := client.AnimesPaginated(AnimeSearchParams{Limit: mo.Some(2)})

			var ids []int64
			for p.Next(context.Background()) {
				ids = append(ids, p.Item().ID.Int64())
			}

			So(p.Err(), ShouldBeNil)
			So(ids, ShouldResemble, []int64{1, 2, 3})
			So(transport.calls, ShouldEqual, 3)

			So(transport.requests[0].Variables["page"], ShouldEqual, 1)
			So(transport.requests[1].Variables["page"], ShouldEqual, 2)
			So(transport.requests[2].Variables["page"], ShouldEqual, 3)
		})

		Convey("Should start at the requested page", func() {
			client, transport := newStubClient(`{"data":{"animes":[]}}`)

			p := client.AnimesPaginated(AnimeSearchParams{Page: mo.Some(4)})
			So(p.Next(context.Background()), ShouldBeFalse)
			So(transport.requests[0].Variables["page"], ShouldEqual, 4)
		})

		Convey("Should stop and expose the first error", func() {
			client, _ := newStubClient(
				`{"data":{"animes":[{"id":1,"name":"a"}]}}`,
				`{"data":null,"errors":[{"message":"boom"}]}`,
			)

			p := client.AnimesPaginated(AnimeSearchParams{})
			So(p.Next(context.Background()), ShouldBeTrue)
			So(p.Next(context.Background()), ShouldBeFalse)
			So(graphql.IsKind(p.Err(), graphql.KindGraphQL), ShouldBeTrue)

			// Iteration stays over once stopped.
			So(p.Next(context.Background()), ShouldBeFalse)
		})

		Convey("Should yield nothing for invalid params", func() {
			client, transport := newStubClient(`{"data":{"animes":[]}}`)

			p := client.AnimesPaginated(AnimeSearchParams{Limit: mo.Some(0)})
			So(p.Next(context.Background()), ShouldBeFalse)
			So(graphql.IsKind(p.Err(), graphql.KindValidation), ShouldBeTrue)
			So(transport.calls, ShouldEqual, 0)
		})
	})
}

func TestCharactersPaginated(t *testing.T) {
	Convey("Client.CharactersPaginated", t, func() {
		Convey("Lookup mode has no pages", func() {
			client, transport := newStubClient(`{"data":{"characters":[]}}`)

			p := client.CharactersPaginated(CharacterSearchParams{IDs: mo.Some([]string{"1"})})
			So(p.Next(context.Background()), ShouldBeFalse)
			So(p.Err(), ShouldBeNil)
			So(transport.calls, ShouldEqual, 0)
		})

		Convey("Mixing ids with a page surfaces the validation error", func() {
			client, transport := newStubClient(`{"data":{"characters":[]}}`)

			p := client.CharactersPaginated(CharacterSearchParams{
				IDs:  mo.Some([]string{"1"}),
				Page: mo.Some(2),
			})
			So(p.Next(context.Background()), ShouldBeFalse)
			So(graphql.IsKind(p.Err(), graphql.KindValidation), ShouldBeTrue)
			So(transport.calls, ShouldEqual, 0)
		})

		Convey("Browse mode pages normally", func() {
			client, _ := newStubClient(
				`{"data":{"characters":[{"id":40,"name":"Luffy"}]}}`,
				`{"data":{"characters":[]}}`,
			)

			p := client.CharactersPaginated(CharacterSearchParams{Limit: mo.Some(1)})
			So(p.Next(context.Background()), ShouldBeTrue)
			So(p.Item().Name, ShouldEqual, "Luffy")
			So(p.Next(context.Background()), ShouldBeFalse)
			So(p.Err(), ShouldBeNil)
		})
	})
}

func TestUserRatesPaginated(t *testing.T) {
	Convey("Client.UserRatesPaginated", t, func() {
		client, _ := newStubClient(
			`{"data":{"userRates":[{"id":1},{"id":2}]}}`,
			`{"data":{"userRates":[]}}`,
		)

		p := client.UserRatesPaginated(UserRateSearchParams{Limit: mo.Some(2)})

		var ids []int64
		for p.Next(context.Background()) {
			ids = append(ids, p.Item().ID.Int64())
		}

		So(p.Err(), ShouldBeNil)
		So(ids, ShouldResemble, []int64{1, 2})
	})
}
