// Package ingest converts uploaded CSV documents into typed snapshot
// records at the boundary. The core never sees untyped rows.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	model "github.com/okian/tipoff/internal/domain/model"
)

// Fantasy-point coefficients applied when a player upload carries raw
// box totals instead of a precomputed composite.
const (
	fpReboundWeight = 1.2
	fpAssistWeight  = 1.5
	fpStealWeight   = 3.0
	fpBlockWeight   = 3.0
)

// Accepted tipoff layouts. Both are read as viewer-local wall clock.
var tipoffLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
}

// header maps lowercased column names to their positions.
type header map[string]int

func indexHeader(cols []string) header {
	h := make(header, len(cols))
	for i, c := range cols {
		h[strings.ToLower(strings.TrimSpace(c))] = i
	}
	return h
}

// get returns the trimmed cell for a column, ok=false when the column
// is absent or the row is too short.
func (h header) get(row []string, name string) (string, bool) {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

func (h header) has(names ...string) bool {
	for _, n := range names {
		if _, ok := h[n]; !ok {
			return false
		}
	}
	return true
}

// first returns the first of the named columns present in the row.
func (h header) first(row []string, names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := h.get(row, n); ok {
			return v, true
		}
	}
	return "", false
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

func readHeader(cr *csv.Reader) (header, error) {
	cols, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyDocument
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return indexHeader(cols), nil
}

// resolveTeamCell canonicalizes a team cell, surfacing a warning for
// names outside the franchise table.
func resolveTeamCell(cell string, warnings *[]model.Warning) string {
	code, ok := model.ResolveTeam(cell)
	if !ok {
		*warnings = append(*warnings, model.Warning{
			Kind:    model.WarnUnknownTeam,
			Subject: code,
			Message: fmt.Sprintf("unrecognized team %q kept as code %s", cell, code),
		})
	}
	return code
}

func badRow(warnings *[]model.Warning, line int, reason string) {
	*warnings = append(*warnings, model.Warning{
		Kind:    model.WarnBadRow,
		Subject: fmt.Sprintf("row %d", line),
		Message: fmt.Sprintf("row %d dropped: %s", line, reason),
	})
}

// ParsePlayers reads the player stat upload. Rows either carry a
// precomputed per-game "fp" column or the raw box totals
// (gp, pts, reb, ast, stl, blk, tov) the composite is derived from:
// pts + 1.2·reb + 1.5·ast + 3·stl + 3·blk − tov, divided by games
// played.
func ParsePlayers(r io.Reader) ([]model.PlayerRecord, []model.Warning, error) {
	cr := newReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, nil, err
	}

	hasName := h.has("name") || h.has("player")
	if !hasName || !h.has("team") {
		return nil, nil, fmt.Errorf("%w: player uploads need name and team", ErrMissingColumn)
	}
	hasFP := h.has("fp")
	hasBox := h.has("gp", "pts", "reb", "ast", "stl", "blk", "tov")
	if !hasFP && !hasBox {
		return nil, nil, fmt.Errorf("%w: player uploads need fp or the raw box columns", ErrMissingColumn)
	}

	var (
		records  []model.PlayerRecord
		warnings []model.Warning
	)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", line, err)
		}

		name, _ := h.first(row, "name", "player")
		if name == "" {
			badRow(&warnings, line, "empty player name")
			continue
		}
		teamCell, _ := h.get(row, "team")
		team := resolveTeamCell(teamCell, &warnings)

		rec := model.PlayerRecord{Name: name, Team: team}
		if gpCell, ok := h.get(row, "gp"); ok && gpCell != "" {
			gp, err := strconv.Atoi(gpCell)
			if err != nil {
				badRow(&warnings, line, fmt.Sprintf("games played %q", gpCell))
				continue
			}
			rec.GamesPlayed = gp
		}

		if hasFP {
			cell, _ := h.get(row, "fp")
			fp, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				badRow(&warnings, line, fmt.Sprintf("fp %q", cell))
				continue
			}
			rec.FP = fp
		} else {
			fp, err := deriveFP(h, row, rec.GamesPlayed)
			if err != nil {
				badRow(&warnings, line, err.Error())
				continue
			}
			rec.FP = fp
		}

		records = append(records, rec)
	}

	return records, warnings, nil
}

// deriveFP computes the per-game composite from raw box totals.
func deriveFP(h header, row []string, gamesPlayed int) (float64, error) {
	if gamesPlayed <= 0 {
		return 0, fmt.Errorf("games played %d", gamesPlayed)
	}
	cells := make(map[string]float64, 6)
	for _, col := range []string{"pts", "reb", "ast", "stl", "blk", "tov"} {
		cell, _ := h.get(row, col)
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return 0, fmt.Errorf("%s %q", col, cell)
		}
		cells[col] = v
	}
	total := cells["pts"] +
		fpReboundWeight*cells["reb"] +
		fpAssistWeight*cells["ast"] +
		fpStealWeight*cells["stl"] +
		fpBlockWeight*cells["blk"] -
		cells["tov"]
	return total / float64(gamesPlayed), nil
}

// ParseTeams reads the team advanced-stat upload. At most one record
// survives per team code; later duplicates overwrite with a warning.
func ParseTeams(r io.Reader) ([]model.TeamRecord, []model.Warning, error) {
	cr := newReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, nil, err
	}
	if !h.has("team", "net_rating", "pace") {
		return nil, nil, fmt.Errorf("%w: team uploads need team, net_rating and pace", ErrMissingColumn)
	}

	var (
		order    []string
		byCode   = make(map[string]model.TeamRecord)
		warnings []model.Warning
	)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", line, err)
		}

		teamCell, _ := h.get(row, "team")
		if teamCell == "" {
			badRow(&warnings, line, "empty team")
			continue
		}
		code := resolveTeamCell(teamCell, &warnings)

		netCell, _ := h.get(row, "net_rating")
		net, err := strconv.ParseFloat(netCell, 64)
		if err != nil {
			badRow(&warnings, line, fmt.Sprintf("net_rating %q", netCell))
			continue
		}
		paceCell, _ := h.get(row, "pace")
		pace, err := strconv.ParseFloat(paceCell, 64)
		if err != nil {
			badRow(&warnings, line, fmt.Sprintf("pace %q", paceCell))
			continue
		}

		if _, seen := byCode[code]; seen {
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnDuplicateRow,
				Subject: code,
				Message: fmt.Sprintf("duplicate team row for %s; later row wins", code),
			})
		} else {
			order = append(order, code)
		}
		byCode[code] = model.TeamRecord{Code: code, NetRating: net, Pace: pace}
	}

	records := make([]model.TeamRecord, 0, len(order))
	for _, code := range order {
		records = append(records, byCode[code])
	}
	return records, warnings, nil
}

// ParseInjuries reads the injury report upload. Status strings outside
// the recognized set are kept verbatim; the adjuster decides their
// fate at scoring time.
func ParseInjuries(r io.Reader) ([]model.InjuryEntry, []model.Warning, error) {
	cr := newReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, nil, err
	}
	hasPlayer := h.has("player") || h.has("name")
	if !hasPlayer || !h.has("team") || !h.has("status") {
		return nil, nil, fmt.Errorf("%w: injury uploads need player, team and status", ErrMissingColumn)
	}

	var (
		entries  []model.InjuryEntry
		warnings []model.Warning
	)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", line, err)
		}

		player, _ := h.first(row, "player", "name")
		if player == "" {
			badRow(&warnings, line, "empty player name")
			continue
		}
		teamCell, _ := h.get(row, "team")
		team := resolveTeamCell(teamCell, &warnings)

		raw, _ := h.get(row, "status")
		status, ok := model.ParseStatus(raw)
		if !ok {
			status = model.InjuryStatus(strings.Join(strings.Fields(strings.ToLower(raw)), " "))
		}

		entries = append(entries, model.InjuryEntry{
			Player:    player,
			Team:      team,
			Status:    status,
			RawStatus: raw,
		})
	}

	return entries, warnings, nil
}

// ParseSchedule reads the day's schedule upload. Exactly one game
// survives per away@home pairing; later duplicates overwrite with a
// warning. An empty spread cell marks a game without a line.
func ParseSchedule(r io.Reader) ([]model.ScheduledGame, []model.Warning, error) {
	cr := newReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, nil, err
	}
	if !h.has("home", "away", "tipoff") {
		return nil, nil, fmt.Errorf("%w: schedule uploads need home, away and tipoff", ErrMissingColumn)
	}

	var (
		order    []string
		byCode   = make(map[string]model.ScheduledGame)
		warnings []model.Warning
	)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", line, err)
		}

		homeCell, _ := h.get(row, "home")
		awayCell, _ := h.get(row, "away")
		if homeCell == "" || awayCell == "" {
			badRow(&warnings, line, "empty home or away team")
			continue
		}
		home := resolveTeamCell(homeCell, &warnings)
		away := resolveTeamCell(awayCell, &warnings)

		tipCell, _ := h.get(row, "tipoff")
		tip, err := parseTipoff(tipCell)
		if err != nil {
			badRow(&warnings, line, fmt.Sprintf("tipoff %q", tipCell))
			continue
		}

		game := model.ScheduledGame{Home: home, Away: away, Tipoff: tip}
		if cell, ok := h.get(row, "spread"); ok && cell != "" {
			spread, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				badRow(&warnings, line, fmt.Sprintf("spread %q", cell))
				continue
			}
			game.Spread = &spread
		}

		code := game.Code()
		if _, seen := byCode[code]; seen {
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnDuplicateRow,
				Subject: code,
				Message: fmt.Sprintf("duplicate schedule row for %s; later row wins", code),
			})
		} else {
			order = append(order, code)
		}
		byCode[code] = game
	}

	games := make([]model.ScheduledGame, 0, len(order))
	for _, code := range order {
		games = append(games, byCode[code])
	}
	return games, warnings, nil
}

// parseTipoff accepts RFC3339 or a bare "2006-01-02 15:04", both taken
// as the viewer's wall clock.
func parseTipoff(cell string) (time.Time, error) {
	for _, layout := range tipoffLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, cell)
}
