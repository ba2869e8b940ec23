package model

import "strings"

// teamCodes maps full franchise names to 3-letter team codes.
var teamCodes = map[string]string{
	"Atlanta Hawks":          "ATL",
	"Boston Celtics":         "BOS",
	"Brooklyn Nets":          "BKN",
	"Charlotte Hornets":      "CHA",
	"Chicago Bulls":          "CHI",
	"Cleveland Cavaliers":    "CLE",
	"Dallas Mavericks":       "DAL",
	"Denver Nuggets":         "DEN",
	"Detroit Pistons":        "DET",
	"Golden State Warriors":  "GSW",
	"Houston Rockets":        "HOU",
	"Indiana Pacers":         "IND",
	"Los Angeles Clippers":   "LAC",
	"Los Angeles Lakers":     "LAL",
	"Memphis Grizzlies":      "MEM",
	"Miami Heat":             "MIA",
	"Milwaukee Bucks":        "MIL",
	"Minnesota Timberwolves": "MIN",
	"New Orleans Pelicans":   "NOP",
	"New York Knicks":        "NYK",
	"Oklahoma City Thunder":  "OKC",
	"Orlando Magic":          "ORL",
	"Philadelphia 76ers":     "PHI",
	"Phoenix Suns":           "PHX",
	"Portland Trail Blazers": "POR",
	"Sacramento Kings":       "SAC",
	"San Antonio Spurs":      "SAS",
	"Toronto Raptors":        "TOR",
	"Utah Jazz":              "UTA",
	"Washington Wizards":     "WAS",
}

// teamNames is the reverse lookup, built once at init.
var teamNames = map[string]string{}

// lowerNameCodes supports case-insensitive full-name lookups.
var lowerNameCodes = map[string]string{}

func init() {
	for name, code := range teamCodes {
		teamNames[code] = name
		lowerNameCodes[strings.ToLower(name)] = code
	}
}

// ResolveTeam maps an upload cell (3-letter code or full franchise
// name, any case) to its canonical team code. ok is false when the
// cell matches neither; callers keep the uppercased cell as a
// best-effort code and surface a warning.
func ResolveTeam(cell string) (string, bool) {
	trimmed := strings.TrimSpace(cell)
	upper := strings.ToUpper(trimmed)
	if _, ok := teamNames[upper]; ok {
		return upper, true
	}
	if code, ok := lowerNameCodes[strings.ToLower(trimmed)]; ok {
		return code, true
	}
	return upper, false
}

// TeamName returns the full franchise name for a team code, or the
// code itself when unknown.
func TeamName(code string) string {
	if name, ok := teamNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}
