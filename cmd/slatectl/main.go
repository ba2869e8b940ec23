package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/tipoff/internal/slatectl"
)

// Default configuration constants.
const (
	defaultTop        = 20
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080", "Base URL of the service")
		players   = flag.String("players", "", "Player stats CSV to upload")
		teams     = flag.String("teams", "", "Team advanced stats CSV to upload")
		injuries  = flag.String("injuries", "", "Injury report CSV to upload")
		schedule  = flag.String("schedule", "", "Schedule CSV to upload")
		top       = flag.Int("top", defaultTop, "Number of ranked games to print")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose   = flag.Bool("verbose", false, "Enable verbose logging")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		slatectl.ShowHelp()
		return
	}

	if err := slatectl.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &slatectl.Config{
		BaseURL:      *baseURL,
		PlayersFile:  *players,
		TeamsFile:    *teams,
		InjuriesFile: *injuries,
		ScheduleFile: *schedule,
		Top:          *top,
		Timeout:      *timeout,
		Verbose:      *verbose,
	}

	if err := slatectl.Run(ctx, config); err != nil {
		os.Stderr.WriteString("slatectl failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
