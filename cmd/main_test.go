package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/okian/tipoff/internal/adapters/http/api"
	app "github.com/okian/tipoff/internal/app"
	"github.com/okian/tipoff/internal/config"
	"github.com/okian/tipoff/pkg/logger"
	"github.com/okian/tipoff/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			// Test with environment variables
			_ = os.Setenv("TIPOFF_ADDR", ":8080")
			_ = os.Setenv("TIPOFF_TOP_N_PLAYERS", "2")
			_ = os.Setenv("TIPOFF_STAR_COMBINE", "max")
			defer func() {
				_ = os.Unsetenv("TIPOFF_ADDR")
				_ = os.Unsetenv("TIPOFF_TOP_N_PLAYERS")
				_ = os.Unsetenv("TIPOFF_STAR_COMBINE")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.TopNPlayers, convey.ShouldEqual, 2)
				convey.So(cfg.StarCombine, convey.ShouldEqual, "max")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithTopN(2),
					app.WithMustWatchThreshold(70),
					app.WithDataDir(t.TempDir()),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing router creation", func() {
			svc := app.New(app.WithDataDir(t.TempDir()))
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then the API router should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
				convey.So(server.Router(context.Background()), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager()
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should stop with its context", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing the full service lifecycle", func() {
			svc := app.New(app.WithDataDir(t.TempDir()))

			convey.Convey("Then it should start and stop cleanly", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				convey.So(svc.Start(ctx), convey.ShouldBeNil)
				stats := svc.GetStats()
				convey.So(stats["started"], convey.ShouldEqual, true)

				svc.Stop()
				stats = svc.GetStats()
				convey.So(stats["started"], convey.ShouldEqual, false)
			})
		})
	})
}
