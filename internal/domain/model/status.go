package model

import "strings"

// InjuryStatus is a normalized injury report status token.
type InjuryStatus string

// Recognized statuses, most to least severe. Absence of an entry means
// the player is fully available.
const (
	StatusOut          InjuryStatus = "out"
	StatusDoubtful     InjuryStatus = "doubtful"
	StatusQuestionable InjuryStatus = "questionable"
	StatusProbable     InjuryStatus = "probable"
)

// Statuses returns the recognized statuses ordered most severe first.
func Statuses() []InjuryStatus {
	return []InjuryStatus{StatusOut, StatusDoubtful, StatusQuestionable, StatusProbable}
}

// statusSynonyms maps report wordings seen in the wild onto the
// canonical set.
var statusSynonyms = map[string]InjuryStatus{
	"out":                StatusOut,
	"out for season":     StatusOut,
	"out for the season": StatusOut,
	"expected to be out": StatusOut,
	"doubtful":           StatusDoubtful,
	"questionable":       StatusQuestionable,
	"game time decision": StatusQuestionable,
	"probable":           StatusProbable,
}

// ParseStatus normalizes a raw injury report status string. ok is false
// for strings outside the recognized set; callers treat those as "no
// adjustment" and surface a warning.
func ParseStatus(raw string) (InjuryStatus, bool) {
	key := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	s, ok := statusSynonyms[key]
	return s, ok
}

// Severity orders statuses for monotonicity checks: higher means a
// larger availability discount. Unrecognized statuses rank zero,
// the same as no entry at all.
func (s InjuryStatus) Severity() int {
	switch s {
	case StatusOut:
		return 4
	case StatusDoubtful:
		return 3
	case StatusQuestionable:
		return 2
	case StatusProbable:
		return 1
	default:
		return 0
	}
}
