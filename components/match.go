package components

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/arcadebit/streetduel/config"
)

// Winner identifies the knockout winner once the match reaches ko.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerEnemy
)

// MatchData is the round lifecycle singleton. It is mutated only by the
// match system and read by everything else.
type MatchData struct {
	State        config.MatchStateID
	Round        int
	StateSinceMs float64 // match-clock time the current state was entered
	Winner       Winner
}

var Match = donburi.NewComponentType[MatchData]()

// Enter transitions to state, stamping the synthetic clock.
func (m *MatchData) Enter(state config.MatchStateID, nowMs float64) {
	m.State = state
	m.StateSinceMs = nowMs
}

// Elapsed is the time spent in the current state.
func (m *MatchData) Elapsed(nowMs float64) float64 {
	return nowMs - m.StateSinceMs
}

// CountdownSeconds is the ceil of the remaining countdown, for the HUD.
// 0 outside the countdown state.
func (m *MatchData) CountdownSeconds(nowMs float64) int {
	if m.State != config.MatchStateCountdown {
		return 0
	}
	remaining := config.Match.CountdownMs - m.Elapsed(nowMs)
	if remaining < 0 {
		remaining = 0
	}
	return int(math.Ceil(remaining / 1000))
}

// Banner is the overlay text for the current state, "" when no banner
// applies. During ready the first half shows READY and the second half
// FIGHT!; during ko the text names the winner.
func (m *MatchData) Banner(nowMs float64) string {
	switch m.State {
	case config.MatchStateReady:
		if m.Elapsed(nowMs) < config.Match.ReadyHalfMs {
			return config.Match.BannerReady
		}
		return config.Match.BannerFight
	case config.MatchStateKO:
		switch m.Winner {
		case WinnerPlayer:
			return config.Match.BannerPlayerWin
		case WinnerEnemy:
			return config.Match.BannerEnemyWin
		}
	}
	return ""
}
