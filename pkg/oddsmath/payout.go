package oddsmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ToWin returns the profit of a winning stake at American odds, rounded to cents
// +150 risking 100 wins 150; -110 risking 110 wins 100
func ToWin(risk decimal.Decimal, american int) (decimal.Decimal, error) {
	if american == 0 {
		return decimal.Zero, fmt.Errorf("invalid American odds: cannot be 0")
	}

	a := decimal.NewFromInt(int64(american))
	if american > 0 {
		// Positive odds: risk * odds / 100
		return risk.Mul(a).Div(hundred).Round(2), nil
	}

	// Negative odds: risk / (|odds| / 100)
	return risk.Div(a.Abs().Div(hundred)).Round(2), nil
}

// ToRisk is the inverse of ToWin: the stake needed to win the given amount
func ToRisk(win decimal.Decimal, american int) (decimal.Decimal, error) {
	if american == 0 {
		return decimal.Zero, fmt.Errorf("invalid American odds: cannot be 0")
	}

	a := decimal.NewFromInt(int64(american))
	if american > 0 {
		return win.Mul(hundred).Div(a).Round(2), nil
	}

	return win.Mul(a.Abs()).Div(hundred).Round(2), nil
}

// UnitStake returns risk and win for a one-unit play: favourites risk enough to
// win one unit, underdogs risk one unit
func UnitStake(unit decimal.Decimal, american int) (risk, win decimal.Decimal, err error) {
	if american < 0 {
		risk, err = ToRisk(unit, american)
		return risk, unit, err
	}

	win, err = ToWin(unit, american)
	return unit, win, err
}
