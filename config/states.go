package config

// AnimID identifies one of the fixed animation roles a fighter can own.
// Not every fighter carries every role; missing roles are simply absent
// from the fighter's animation map.
type AnimID int

const (
	AnimNone AnimID = iota
	AnimIdle
	AnimWalk
	AnimAttack
	AnimTaunt
	AnimGiveUp
)

func (a AnimID) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimAttack:
		return "attack"
	case AnimTaunt:
		return "taunt"
	case AnimGiveUp:
		return "giveup"
	}
	return "none"
}

// MatchStateID is the round lifecycle state.
type MatchStateID int

const (
	MatchStateIntro MatchStateID = iota
	MatchStateCountdown
	MatchStateReady
	MatchStateFight
	MatchStateKO
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStateIntro:
		return "intro"
	case MatchStateCountdown:
		return "countdown"
	case MatchStateReady:
		return "ready"
	case MatchStateFight:
		return "fight"
	case MatchStateKO:
		return "ko"
	}
	return "unknown"
}
