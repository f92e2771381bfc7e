package game

import (
	"math"
	"strconv"
)

// Chips is an amount of money. Stacks and wagers are whole numbers; a tied
// showdown can leave fractional shares, which are kept as they are.
type Chips float64

// chipEpsilon absorbs float rounding when auditing chip totals.
const chipEpsilon = 1e-6

// String prints whole amounts without decimals and fractional ones to the cent.
func (c Chips) String() string {
	if c == Chips(math.Trunc(float64(c))) {
		return strconv.FormatInt(int64(c), 10)
	}
	return strconv.FormatFloat(float64(c), 'f', 2, 64)
}

func sameChips(a, b Chips) bool {
	return math.Abs(float64(a-b)) < chipEpsilon
}
