package normalize_test

import (
	"testing"

	model "github.com/okian/tipoff/internal/domain/model"
	normalize "github.com/okian/tipoff/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

// stubAdjuster returns canned multipliers keyed by player name, with
// full contribution for everyone else.
type stubAdjuster map[string]float64

func (s stubAdjuster) Multiplier(player string) float64 {
	if m, ok := s[player]; ok {
		return m
	}
	return 1.0
}

func TestStarFactorAggregation(t *testing.T) {
	Convey("Given a roster deeper than top-N", t, func() {
		players := []model.PlayerRecord{
			{Name: "Alpha", Team: "BOS", FP: 50, GamesPlayed: 40},
			{Name: "Bravo", Team: "BOS", FP: 40, GamesPlayed: 41},
			{Name: "Charlie", Team: "BOS", FP: 30, GamesPlayed: 39},
			{Name: "Delta", Team: "BOS", FP: 20, GamesPlayed: 42},
		}
		teams := []model.TeamRecord{{Code: "BOS", NetRating: 5, Pace: 100}}

		Convey("When computing metrics with the default top-3", func() {
			n := normalize.New()
			metrics, warnings := n.TeamMetrics(players, teams, stubAdjuster{})

			Convey("Then the raw star factor should sum the top three", func() {
				So(metrics["BOS"].RawStar, ShouldEqual, 120) // 50+40+30
				So(metrics["BOS"].Rostered, ShouldEqual, 4)
				So(metrics["BOS"].HasRecord, ShouldBeTrue)
			})

			Convey("And no short-roster warning should fire", func() {
				So(warnings, ShouldBeEmpty)
			})
		})

		Convey("When the top scorer is out", func() {
			n := normalize.New()
			metrics, _ := n.TeamMetrics(players, teams, stubAdjuster{"Alpha": 0})

			Convey("Then the slot should pass to the remaining roster", func() {
				So(metrics["BOS"].RawStar, ShouldEqual, 90) // 40+30+20
			})
		})

		Convey("When the top scorer is questionable", func() {
			n := normalize.New()
			metrics, _ := n.TeamMetrics(players, teams, stubAdjuster{"Alpha": 0.5})

			Convey("Then the discounted contribution should still rank", func() {
				// Alpha at 25 now sits below Bravo and Charlie but above Delta.
				So(metrics["BOS"].RawStar, ShouldEqual, 95) // 40+30+25
			})
		})

		Convey("When every qualifying player is out", func() {
			n := normalize.New()
			metrics, _ := n.TeamMetrics(players, teams, stubAdjuster{
				"Alpha": 0, "Bravo": 0, "Charlie": 0, "Delta": 0,
			})

			Convey("Then the raw star factor should reach zero", func() {
				So(metrics["BOS"].RawStar, ShouldEqual, 0)
			})
		})

		Convey("When top-N is reconfigured to 2", func() {
			n := normalize.New(normalize.WithTopN(2))
			metrics, _ := n.TeamMetrics(players, teams, stubAdjuster{})

			Convey("Then only the two best should count", func() {
				So(metrics["BOS"].RawStar, ShouldEqual, 90) // 50+40
				So(n.TopN(), ShouldEqual, 2)
			})
		})
	})
}

func TestShortRosterFallback(t *testing.T) {
	Convey("Given a team with fewer players than top-N", t, func() {
		players := []model.PlayerRecord{
			{Name: "Solo", Team: "UTA", FP: 35, GamesPlayed: 38},
		}
		teams := []model.TeamRecord{{Code: "UTA", NetRating: -4, Pace: 97}}

		n := normalize.New()
		metrics, warnings := n.TeamMetrics(players, teams, stubAdjuster{})

		Convey("Then the star factor should use whoever exists", func() {
			So(metrics["UTA"].RawStar, ShouldEqual, 35)
		})

		Convey("And a short-roster warning should be surfaced", func() {
			So(warnings, ShouldHaveLength, 1)
			So(warnings[0].Kind, ShouldEqual, model.WarnShortRoster)
			So(warnings[0].Subject, ShouldEqual, "UTA")
		})
	})

	Convey("Given a team record with no uploaded players", t, func() {
		teams := []model.TeamRecord{
			{Code: "WAS", NetRating: -8, Pace: 103},
			{Code: "DET", NetRating: -6, Pace: 99},
		}

		n := normalize.New()
		metrics, warnings := n.TeamMetrics(nil, teams, stubAdjuster{})

		Convey("Then the team should still get quality and pace factors", func() {
			So(metrics["WAS"].HasRecord, ShouldBeTrue)
			So(metrics["WAS"].Quality, ShouldEqual, 0.0)
			So(metrics["DET"].Quality, ShouldEqual, 1.0)
		})

		Convey("And short-roster warnings should name both teams", func() {
			So(warnings, ShouldHaveLength, 2)
		})
	})
}

func TestFactorRescaling(t *testing.T) {
	Convey("Given three teams spanning a metric range", t, func() {
		teams := []model.TeamRecord{
			{Code: "AAA", NetRating: -10, Pace: 95},
			{Code: "BBB", NetRating: 0, Pace: 100},
			{Code: "CCC", NetRating: 10, Pace: 105},
		}

		n := normalize.New()
		metrics, _ := n.TeamMetrics(nil, teams, stubAdjuster{})

		Convey("Then factors should map onto [0, 1] by min-max", func() {
			So(metrics["AAA"].Quality, ShouldEqual, 0.0)
			So(metrics["BBB"].Quality, ShouldEqual, 0.5)
			So(metrics["CCC"].Quality, ShouldEqual, 1.0)

			So(metrics["AAA"].Pace, ShouldEqual, 0.0)
			So(metrics["BBB"].Pace, ShouldEqual, 0.5)
			So(metrics["CCC"].Pace, ShouldEqual, 1.0)
		})
	})

	Convey("Given teams with identical metrics", t, func() {
		teams := []model.TeamRecord{
			{Code: "AAA", NetRating: 3, Pace: 99},
			{Code: "BBB", NetRating: 3, Pace: 99},
		}

		n := normalize.New()
		metrics, _ := n.TeamMetrics(nil, teams, stubAdjuster{})

		Convey("Then the degenerate range should yield the neutral midpoint", func() {
			So(metrics["AAA"].Quality, ShouldEqual, 0.5)
			So(metrics["BBB"].Quality, ShouldEqual, 0.5)
			So(metrics["AAA"].Pace, ShouldEqual, 0.5)
		})
	})

	Convey("Given star factors across teams", t, func() {
		players := []model.PlayerRecord{
			{Name: "High One", Team: "GSW", FP: 60},
			{Name: "High Two", Team: "GSW", FP: 50},
			{Name: "High Three", Team: "GSW", FP: 40},
			{Name: "Low One", Team: "POR", FP: 30},
			{Name: "Low Two", Team: "POR", FP: 20},
			{Name: "Low Three", Team: "POR", FP: 10},
		}
		teams := []model.TeamRecord{
			{Code: "GSW", NetRating: 4, Pace: 102},
			{Code: "POR", NetRating: -2, Pace: 98},
		}

		n := normalize.New()
		metrics, _ := n.TeamMetrics(players, teams, stubAdjuster{})

		Convey("Then the best and worst rosters should pin the range", func() {
			So(metrics["GSW"].Star, ShouldEqual, 1.0)
			So(metrics["POR"].Star, ShouldEqual, 0.0)
		})

		Convey("And all factors should stay within [0, 1]", func() {
			for _, m := range metrics {
				So(m.Star, ShouldBeBetweenOrEqual, 0.0, 1.0)
				So(m.Quality, ShouldBeBetweenOrEqual, 0.0, 1.0)
				So(m.Pace, ShouldBeBetweenOrEqual, 0.0, 1.0)
			}
		})
	})
}

func TestMissingRecordSurface(t *testing.T) {
	Convey("Given players for a team with no team record", t, func() {
		players := []model.PlayerRecord{
			{Name: "Orphan", Team: "SEA", FP: 44},
		}

		n := normalize.New()
		metrics, _ := n.TeamMetrics(players, nil, stubAdjuster{})

		Convey("Then the metrics entry should flag the missing record", func() {
			m, ok := metrics["SEA"]
			So(ok, ShouldBeTrue)
			So(m.HasRecord, ShouldBeFalse)
			So(m.RawStar, ShouldEqual, 44)
		})
	})
}
