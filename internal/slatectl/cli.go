package slatectl

import (
	"os"

	"github.com/okian/tipoff/pkg/logger"
)

// SetupLogging initializes the CLI's logger.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return err
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.SetLevelString(level)
}

// ShowHelp prints usage information for slatectl.
func ShowHelp() {
	os.Stdout.WriteString(`Tipoff Slate Tool
=================

Uploads the day's snapshot files to a running tipoff service and prints
the ranked slate with the recommended double header.

Usage:
  go run cmd/slatectl/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -players string
        Player stats CSV to upload (skipped when empty)
  -teams string
        Team advanced stats CSV to upload (skipped when empty)
  -injuries string
        Injury report CSV to upload (skipped when empty)
  -schedule string
        Schedule CSV to upload (skipped when empty)
  -top int
        Number of ranked games to print (default 20)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Upload the full day and print the slate
  go run cmd/slatectl/main.go -players players.csv -teams teams.csv \
      -injuries injuries.csv -schedule schedule.csv

  # Re-rank without new uploads
  go run cmd/slatectl/main.go

  # Refresh the injury report only
  go run cmd/slatectl/main.go -injuries injuries.csv -verbose
`)
}
