package ingest

import model "github.com/okian/tipoff/internal/domain/model"

// Kind names one of the four snapshot upload sections.
type Kind string

// Recognized upload kinds.
const (
	KindPlayers  Kind = "players"
	KindTeams    Kind = "teams"
	KindInjuries Kind = "injuries"
	KindSchedule Kind = "schedule"
)

// Kinds returns the recognized upload kinds in section order.
func Kinds() []Kind {
	return []Kind{KindPlayers, KindTeams, KindInjuries, KindSchedule}
}

// ParseKind validates an upload kind token, e.g. from a URL path.
func ParseKind(raw string) (Kind, bool) {
	switch Kind(raw) {
	case KindPlayers, KindTeams, KindInjuries, KindSchedule:
		return Kind(raw), true
	default:
		return "", false
	}
}

// Summary reports one accepted upload back to the caller: how many
// rows survived parsing and every data quality warning raised along
// the way.
type Summary struct {
	Kind     Kind
	Rows     int
	Warnings []model.Warning
}
