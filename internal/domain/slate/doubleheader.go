package slate

import (
	score "github.com/okian/tipoff/internal/domain/score"
)

// Pick is one window's recommendation. Game is nil when nothing tips
// off inside the window; an out-of-window game is never substituted.
type Pick struct {
	Window Window
	Game   *score.GameScore
}

// DoubleHeaderResult holds one pick per viewing window, in window
// priority order.
type DoubleHeaderResult struct {
	Picks []Pick
}

// Pick returns the pick for a window name, if present.
func (r DoubleHeaderResult) Pick(name string) (Pick, bool) {
	for _, p := range r.Picks {
		if p.Window.Name == name {
			return p, true
		}
	}
	return Pick{}, false
}

// SelectDoubleHeader picks the highest-ranked in-window game for each
// window. Windows are honored in priority order, so a game whose
// tipoff somehow matched two windows is assigned to the earlier one
// only; no game is recommended twice.
func SelectDoubleHeader(ranked []score.GameScore, windows []Window) DoubleHeaderResult {
	result := DoubleHeaderResult{Picks: make([]Pick, 0, len(windows))}

	taken := make(map[string]bool, len(windows))
	for _, w := range windows {
		pick := Pick{Window: w}
		for i := range ranked {
			g := ranked[i]
			if taken[g.Game.Code()] || !w.Contains(g.Game.Tipoff) {
				continue
			}
			taken[g.Game.Code()] = true
			pick.Game = &g
			break
		}
		result.Picks = append(result.Picks, pick)
	}

	return result
}
