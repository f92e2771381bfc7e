package game

// Pot is the single pool of a round. Every contribution merges into it; there
// are no side pots, so an all-in player contests the whole amount.
type Pot struct {
	total         Chips
	contributions map[*Player]Chips
}

// NewPot creates an empty pot
func NewPot() *Pot {
	return &Pot{contributions: make(map[*Player]Chips)}
}

// Add records chips paid in by a player.
func (pot *Pot) Add(p *Player, amount Chips) {
	pot.total += amount
	pot.contributions[p] += amount
}

// Total returns the amount in the pot
func (pot *Pot) Total() Chips {
	return pot.total
}

// Contributed returns how much a player has paid in this round.
func (pot *Pot) Contributed(p *Player) Chips {
	return pot.contributions[p]
}

// Payout is one player's share of a settled pot.
type Payout struct {
	Player PlayerView
	Amount Chips
}

// Award splits the whole pot evenly between winners, credits their stacks and
// empties the pot. Uneven splits keep their fractional part.
func (pot *Pot) Award(winners []*Player) []Payout {
	if len(winners) == 0 {
		return nil
	}

	share := pot.total / Chips(len(winners))
	payouts := make([]Payout, 0, len(winners))
	for _, w := range winners {
		w.Stack += share
		payouts = append(payouts, Payout{Player: w.View(), Amount: share})
	}
	pot.total = 0
	return payouts
}
