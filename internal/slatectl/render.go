package slatectl

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// renderReport prints the ranked slate and the double header picks.
func renderReport(slate Slate, doubleHeader DoubleHeader, top int) error {
	var b strings.Builder

	b.WriteString("\n=== Tonight's Slate ===\n")
	b.WriteString(fmt.Sprintf("Snapshot %s, built %s\n\n",
		slate.SnapshotID, slate.BuiltAt.Format("2006-01-02 15:04:05 MST")))

	if len(slate.Ranked) == 0 {
		b.WriteString("No rankable games.\n")
	} else {
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tGAME\tTIPOFF\tSCORE\t\tSTAR\tQUALITY\tPACE\tCLOSE")
		limit := len(slate.Ranked)
		if top > 0 && top < limit {
			limit = top
		}
		for i, gs := range slate.Ranked[:limit] {
			badge := ""
			if gs.MustWatch {
				badge = "MUST WATCH"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
				i+1,
				gs.Game.Code,
				gs.Game.Tipoff.Format("15:04"),
				gs.Score,
				badge,
				gs.SubScores.Star,
				gs.SubScores.Quality,
				gs.SubScores.Pace,
				gs.SubScores.Closeness,
			)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("formatting slate table: %w", err)
		}
		if limit < len(slate.Ranked) {
			b.WriteString(fmt.Sprintf("... and %d more\n", len(slate.Ranked)-limit))
		}
	}

	b.WriteString("\n=== Double Header ===\n")
	for _, pick := range doubleHeader.Picks {
		slot := "no game in window"
		if pick.Game != nil {
			slot = fmt.Sprintf("%s at %s (%.1f)",
				pick.Game.Game.Code,
				pick.Game.Game.Tipoff.Format("15:04"),
				pick.Game.Score)
		}
		b.WriteString(fmt.Sprintf("%-14s %s-%s  %s\n",
			pick.Window.Name, pick.Window.Start, pick.Window.End, slot))
	}

	if len(slate.Skipped) > 0 {
		b.WriteString("\n=== Skipped Games ===\n")
		for _, sk := range slate.Skipped {
			b.WriteString(fmt.Sprintf("%s: %s (missing: %s)\n",
				sk.Game.Code, sk.Reason, strings.Join(sk.MissingTeams, ", ")))
		}
	}

	if len(slate.Errors) > 0 {
		b.WriteString("\n=== Team Errors ===\n")
		for _, te := range slate.Errors {
			b.WriteString(fmt.Sprintf("%s: %s\n", te.Team, te.Message))
		}
	}

	if len(slate.Warnings) > 0 {
		b.WriteString(fmt.Sprintf("\n%d data warning(s); run with -verbose during upload to see them.\n",
			len(slate.Warnings)))
	}

	_, err := os.Stdout.WriteString(b.String())
	return err
}
