package projection

import "math"

const (
	highMinutes = 30.0
	midMinutes  = 20.0

	highMinutesUsage = 1.025
	midMinutesUsage  = 0.985
	lowMinutesUsage  = 0.93

	leagueTrueShooting = 0.57
	maxShootingBoost   = 1.07

	bigBlowoutSpread   = 12.0
	blowoutSpread      = 10.0
	benchMinutesCutoff = 28.0
	bigBlowoutPenalty  = 0.90
	blowoutPenalty     = 0.95
)

// Inputs carries the per-player and per-game context shared by every category.
type Inputs struct {
	TrueShooting   float64
	MinutesPerGame float64
	Spread         float64
	Total          float64
	DvPBonus       float64
}

// UsageMultiplier is a three-step tier on minutes per game; boundaries belong to the higher tier.
func UsageMultiplier(mpg float64) float64 {
	switch {
	case mpg >= highMinutes:
		return highMinutesUsage
	case mpg >= midMinutes:
		return midMinutesUsage
	default:
		return lowMinutesUsage
	}
}

// ShootingMultiplier rewards efficiency relative to league average, capped at
// maxShootingBoost with no floor.
func ShootingMultiplier(ts float64) float64 {
	return math.Min(ts/leagueTrueShooting, maxShootingBoost)
}

// PaceMultiplier scales by the game total relative to LeagueAverageTotal.
func PaceMultiplier(total float64) float64 {
	return total / LeagueAverageTotal
}

// BlowoutMultiplier penalizes lopsided games. A big spread only takes the larger
// penalty for players under benchMinutesCutoff; everyone else falls through to
// the plain blowout check.
func BlowoutMultiplier(spread, mpg float64) float64 {
	margin := math.Abs(spread)
	switch {
	case margin >= bigBlowoutSpread && mpg < benchMinutesCutoff:
		return bigBlowoutPenalty
	case margin >= blowoutSpread:
		return blowoutPenalty
	default:
		return 1.0
	}
}

// IsBlowout is the flag shown in explanations. It only checks the plain
// blowout threshold and so can disagree with the multiplier actually used.
func IsBlowout(spread float64) bool {
	return math.Abs(spread) >= blowoutSpread
}

// Adjust applies every factor to a baseline value for one category:
// base x (1+DvP) x [TS, points only] x pace x blowout x usage.
func Adjust(base float64, cat Category, in Inputs) float64 {
	val := base * (1 + in.DvPBonus)
	if cat == PTS {
		val *= ShootingMultiplier(in.TrueShooting)
	}
	return val * PaceMultiplier(in.Total) * BlowoutMultiplier(in.Spread, in.MinutesPerGame) * UsageMultiplier(in.MinutesPerGame)
}

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
