package model_test

import (
	"testing"

	model "github.com/okian/tipoff/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestResolveTeam(t *testing.T) {
	convey.Convey("Given team cells from uploads", t, func() {
		convey.Convey("When resolving a known code", func() {
			code, ok := model.ResolveTeam("bos")

			convey.Convey("Then it should canonicalize to upper case", func() {
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(code, convey.ShouldEqual, "BOS")
			})
		})

		convey.Convey("When resolving a full franchise name", func() {
			code, ok := model.ResolveTeam("Golden State Warriors")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(code, convey.ShouldEqual, "GSW")

			code, ok = model.ResolveTeam("  los angeles lakers ")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(code, convey.ShouldEqual, "LAL")
		})

		convey.Convey("When resolving an unknown team", func() {
			code, ok := model.ResolveTeam("Seattle SuperSonics")

			convey.Convey("Then it should fall back to the uppercased cell", func() {
				convey.So(ok, convey.ShouldBeFalse)
				convey.So(code, convey.ShouldEqual, "SEATTLE SUPERSONICS")
			})
		})
	})
}

func TestTeamName(t *testing.T) {
	convey.Convey("Given team codes", t, func() {
		convey.Convey("When looking up a known code", func() {
			convey.So(model.TeamName("okc"), convey.ShouldEqual, "Oklahoma City Thunder")
			convey.So(model.TeamName("NOP"), convey.ShouldEqual, "New Orleans Pelicans")
		})

		convey.Convey("When looking up an unknown code", func() {
			convey.So(model.TeamName("XYZ"), convey.ShouldEqual, "XYZ")
		})
	})
}
