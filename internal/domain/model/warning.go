package model

// WarningKind classifies non-fatal data quality findings surfaced to
// the caller alongside the ranked slate.
type WarningKind string

const (
	WarnUnknownStatus WarningKind = "unknown_injury_status"
	WarnMissingSpread WarningKind = "missing_spread"
	WarnShortRoster   WarningKind = "short_roster"
	WarnDuplicateRow  WarningKind = "duplicate_row"
	WarnUnknownTeam   WarningKind = "unknown_team"
	WarnBadRow        WarningKind = "bad_row"
)

// Warning is a non-fatal data quality finding. Subject identifies the
// affected entity (player, team code, or game code).
type Warning struct {
	Kind    WarningKind
	Subject string
	Message string
}
