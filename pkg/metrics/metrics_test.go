package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})

			Convey("Then the registry should expose registered families", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording upload metrics", func() {
			Convey("Then it should record accepted uploads", func() {
				So(func() {
					RecordUploadAccepted("players")
					RecordUploadAccepted("teams")
					RecordUploadAccepted("injuries")
					RecordUploadAccepted("schedule")
				}, ShouldNotPanic)
			})

			Convey("And it should record parsed rows", func() {
				So(func() {
					RecordUploadRows("players", 240)
					RecordUploadRows("schedule", 8)
				}, ShouldNotPanic)
			})

			Convey("And it should record parse warnings", func() {
				So(func() {
					RecordUploadWarnings("injuries", 2)
					RecordUploadWarnings("schedule", 1)
				}, ShouldNotPanic)
			})

			Convey("And it should record rejected uploads", func() {
				So(func() {
					RecordUploadError("players")
					RecordUploadError("teams")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording snapshot metrics", func() {
			Convey("Then it should record persisted snapshots", func() {
				So(func() {
					RecordSnapshotPersisted()
					RecordSnapshotPersisted()
				}, ShouldNotPanic)
			})

			Convey("And it should update section sizes", func() {
				So(func() {
					UpdateSnapshotSizes(240, 30, 12, 8)
					UpdateSnapshotSizes(0, 0, 0, 0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording slate metrics", func() {
			Convey("Then it should record builds and durations", func() {
				So(func() {
					RecordSlateBuild()
					RecordSlateBuildDuration(3.5)
					RecordSlateBuildDuration(12.0)
				}, ShouldNotPanic)
			})

			Convey("And it should update build gauges", func() {
				So(func() {
					UpdateSlateGamesRanked(8)
					UpdateSlateGamesSkipped(1)
					UpdateSlateTeamErrors(2)
					UpdateSlateBuildWarnings(3)
					UpdateSlateMustWatch(2)
					UpdateSlateTopScore(87.3)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("/healthz", "GET", "200")
					RecordHTTPRequest("/api/v1/snapshots/players", "POST", "200")
					RecordHTTPRequest("/api/v1/slate", "GET", "200")
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/healthz", "GET", "200", 5.0)
					RecordHTTPRequestDuration("/api/v1/snapshots/players", "POST", "200", 10.0)
					RecordHTTPRequestDuration("/api/v1/slate", "GET", "200", 15.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording error metrics", func() {
			Convey("Then it should record errors by component", func() {
				So(func() {
					RecordErrorByComponent("ingest", "bad_csv")
					RecordErrorByComponent("store", "write_failed")
					RecordErrorByComponent("slate", "empty_snapshot")
				}, ShouldNotPanic)
			})

			Convey("And it should record errors by type", func() {
				So(func() {
					RecordErrorByType("bad_csv", "warning")
					RecordErrorByType("write_failed", "error")
				}, ShouldNotPanic)
			})

			Convey("And it should record errors by endpoint", func() {
				So(func() {
					RecordErrorByEndpoint("/api/v1/snapshots/players", "POST", "bad_request")
					RecordErrorByEndpoint("/api/v1/slate", "GET", "not_found")
				}, ShouldNotPanic)
			})

			Convey("And it should record error latency", func() {
				So(func() {
					RecordErrorLatency("ingest", "bad_csv", 100.0)
					RecordErrorLatency("store", "write_failed", 200.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should update system memory usage", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024 * 100) // 100MB
					UpdateSystemMemoryUsage(1024 * 1024 * 200) // 200MB
				}, ShouldNotPanic)
			})

			Convey("And it should update system goroutine count", func() {
				So(func() {
					UpdateSystemGoroutineCount(100)
					UpdateSystemGoroutineCount(200)
				}, ShouldNotPanic)
			})

			Convey("And it should record system GC pause time", func() {
				So(func() {
					RecordSystemGCPauseTime(1.0)
					RecordSystemGCPauseTime(2.0)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsEdgeCases(t *testing.T) {
	Convey("Given metrics edge cases", t, func() {
		Convey("When recording metrics with edge values", func() {
			Convey("And using zero values", func() {
				So(func() {
					UpdateSnapshotSizes(0, 0, 0, 0)
					UpdateSlateGamesRanked(0)
					RecordSlateBuildDuration(0.0)
					RecordHTTPRequestDuration("/test", "GET", "200", 0.0)
				}, ShouldNotPanic)
			})

			Convey("And using negative values", func() {
				So(func() {
					UpdateSlateGamesRanked(-1)
					UpdateSlateTopScore(-50.0)
				}, ShouldNotPanic)
			})

			Convey("And using very large values", func() {
				So(func() {
					UpdateSnapshotSizes(1000000, 1000000, 1000000, 1000000)
					RecordSlateBuildDuration(10000.0)
					RecordHTTPRequestDuration("/test", "GET", "200", 30000.0)
				}, ShouldNotPanic)
			})

			Convey("And using empty strings", func() {
				So(func() {
					RecordHTTPRequest("", "", "200")
					RecordHTTPRequestDuration("", "", "200", 10.0)
					RecordUploadAccepted("")
					RecordErrorByComponent("", "")
					RecordErrorByType("", "")
					RecordErrorByEndpoint("", "", "")
					RecordErrorLatency("", "", 10.0)
				}, ShouldNotPanic)
			})

			Convey("And using special characters in labels", func() {
				So(func() {
					RecordHTTPRequest("/test?param=value&other=123", "GET", "200")
					RecordErrorByComponent("component-with-dash", "error_with_underscore")
					RecordErrorByType("error.with.dots", "error")
					RecordErrorByEndpoint("/api/v1/snapshots/players", "POST", "timeout")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			// Start multiple goroutines recording metrics
			for i := 0; i < 10; i++ {
				go func(id int) {
					for j := 0; j < 100; j++ {
						RecordSlateBuild()
						UpdateSnapshotSizes(j, j, j, j)
						RecordSlateBuildDuration(float64(j))
						RecordHTTPRequest("/test", "GET", "200")
					}
					done <- true
				}(i)
			}

			// Wait for all goroutines to complete
			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue) // If we get here, no panics occurred
			})
		})
	})
}

func TestMetricsOptionsValidation(t *testing.T) {
	Convey("Given metrics options validation", t, func() {
		Convey("When creating with empty namespace", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with empty subsystem", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithSubsystem(""), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with nil histogram buckets", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with empty histogram buckets", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithHistogramBuckets([]float64{}), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with nil custom labels", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithCustomLabels(nil), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with zero refresh interval", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRefreshInterval(0), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with negative refresh interval", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRefreshInterval(-1*time.Second), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}
