package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/tipoff/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			// Clear any existing environment variables
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataDir, convey.ShouldEqual, "./data")
				convey.So(cfg.TopNPlayers, convey.ShouldEqual, 3)
				convey.So(cfg.StarCombine, convey.ShouldEqual, "sum")
				convey.So(cfg.MustWatchThreshold, convey.ShouldEqual, 80.0)
				convey.So(cfg.Weights.Star, convey.ShouldEqual, 0.35)
				convey.So(cfg.InjuryDiscounts["questionable"], convey.ShouldEqual, 0.5)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("TIPOFF_ADDR", ":9090")
			_ = os.Setenv("TIPOFF_DATA_DIR", "/tmp/tipoff-data")
			_ = os.Setenv("TIPOFF_TOP_N_PLAYERS", "2")
			_ = os.Setenv("TIPOFF_STAR_COMBINE", "max")
			_ = os.Setenv("TIPOFF_MUST_WATCH_THRESHOLD", "75")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/tmp/tipoff-data")
				convey.So(cfg.TopNPlayers, convey.ShouldEqual, 2)
				convey.So(cfg.StarCombine, convey.ShouldEqual, "max")
				convey.So(cfg.MustWatchThreshold, convey.ShouldEqual, 75.0)
			})
		})

		convey.Convey("When loading nested keys from environment variables", func() {
			_ = os.Setenv("TIPOFF_WEIGHTS__STAR", "0.5")
			_ = os.Setenv("TIPOFF_WEIGHTS__CLOSENESS", "0.2")
			_ = os.Setenv("TIPOFF_INJURY_DISCOUNTS__QUESTIONABLE", "0.6")
			_ = os.Setenv("TIPOFF_WINDOWS__BREAKFAST__END", "11:00")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then double underscores should map to nesting", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Weights.Star, convey.ShouldEqual, 0.5)
				convey.So(cfg.Weights.Closeness, convey.ShouldEqual, 0.2)
				convey.So(cfg.Weights.Quality, convey.ShouldEqual, 0.15) // untouched default
				convey.So(cfg.InjuryDiscounts["questionable"], convey.ShouldEqual, 0.6)
				convey.So(cfg.InjuryDiscounts["out"], convey.ShouldEqual, 0.0) // untouched default
				convey.So(cfg.Windows.Breakfast.End, convey.ShouldEqual, "11:00")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
addr: ":7070"
top_n_players: 4
star_combine: max
weights:
  star: 0.4
  quality: 0.1
  pace: 0.1
  closeness: 0.4
windows:
  early_morning:
    start: "05:30"
    end: "07:00"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TIPOFF_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.TopNPlayers, convey.ShouldEqual, 4)
				convey.So(cfg.StarCombine, convey.ShouldEqual, "max")
				convey.So(cfg.Weights.Star, convey.ShouldEqual, 0.4)
				convey.So(cfg.Windows.EarlyMorning.Start, convey.ShouldEqual, "05:30")
				convey.So(cfg.Windows.Breakfast.Start, convey.ShouldEqual, "07:30") // From defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":7070"
top_n_players: 4
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TIPOFF_CONFIG", tmpFile)
			_ = os.Setenv("TIPOFF_ADDR", ":9090") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")     // Overridden by env
				convey.So(cfg.TopNPlayers, convey.ShouldEqual, 4)    // From file
				convey.So(cfg.DataDir, convey.ShouldEqual, "./data") // From defaults
			})
		})

		convey.Convey("When loading config with an invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TIPOFF_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			_ = os.Setenv("TIPOFF_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("TIPOFF_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an invalid combine mode", func() {
			_ = os.Setenv("TIPOFF_STAR_COMBINE", "average")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "star_combine")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a negative weight", func() {
			_ = os.Setenv("TIPOFF_WEIGHTS__PACE", "-0.2")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with overlapping windows", func() {
			_ = os.Setenv("TIPOFF_WINDOWS__EARLY_MORNING__END", "08:00")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("TIPOFF_TOP_N_PLAYERS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigLoaderEdgeCases(t *testing.T) {
	convey.Convey("Given config loader edge cases", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with various addr formats", func() {
			_ = os.Setenv("TIPOFF_ADDR", "localhost:8080")
			_ = os.Setenv("TIPOFF_ADDR", "0.0.0.0:9090")
			_ = os.Setenv("TIPOFF_ADDR", "[::1]:8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should handle various addr formats", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "[::1]:8080") // Last one wins
			})
		})

		convey.Convey("When loading config with a YAML file containing comments", func() {
			yamlContent := `
# Listen address
addr: ":7070"  # Inline comment
top_n_players: 2
# Star factor combine mode
star_combine: max
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TIPOFF_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should parse YAML with comments", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.TopNPlayers, convey.ShouldEqual, 2)
				convey.So(cfg.StarCombine, convey.ShouldEqual, "max")
			})
		})

		convey.Convey("When loading config with a YAML file zeroing the weights", func() {
			yamlContent := `
weights:
  star: 0
  quality: 0
  pace: 0
  closeness: 0
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TIPOFF_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"TIPOFF_CONFIG",
		"TIPOFF_LOG_LEVEL",
		"TIPOFF_ADDR",
		"TIPOFF_DATA_DIR",
		"TIPOFF_TOP_N_PLAYERS",
		"TIPOFF_STAR_COMBINE",
		"TIPOFF_MUST_WATCH_THRESHOLD",
		"TIPOFF_WEIGHTS__STAR",
		"TIPOFF_WEIGHTS__QUALITY",
		"TIPOFF_WEIGHTS__PACE",
		"TIPOFF_WEIGHTS__CLOSENESS",
		"TIPOFF_INJURY_DISCOUNTS__OUT",
		"TIPOFF_INJURY_DISCOUNTS__DOUBTFUL",
		"TIPOFF_INJURY_DISCOUNTS__QUESTIONABLE",
		"TIPOFF_INJURY_DISCOUNTS__PROBABLE",
		"TIPOFF_WINDOWS__EARLY_MORNING__START",
		"TIPOFF_WINDOWS__EARLY_MORNING__END",
		"TIPOFF_WINDOWS__BREAKFAST__START",
		"TIPOFF_WINDOWS__BREAKFAST__END",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "tipoff-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
