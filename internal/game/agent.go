package game

import (
	"errors"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/lox/holdem-console/internal/deck"
	"github.com/lox/holdem-console/internal/evaluator"
)

// Situation is the read-only state a player decides from.
type Situation struct {
	Player     PlayerView
	Owed       Chips // chips needed to match the highest bet
	HighestBet Chips
	Pot        Chips
	Community  []deck.Card
}

// Agent represents any entity (human or automated) that decides a player's
// wagers. It returns how many chips to put in: 0 folds unless nothing is owed,
// the whole stack is all-in.
type Agent interface {
	Wager(s Situation) (Chips, error)
}

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(s Situation) (Chips, error)

// Wager calls f(s).
func (f AgentFunc) Wager(s Situation) (Chips, error) {
	return f(s)
}

// WagerPrompter asks a person for a wager. rejected carries the reason the
// previous answer was refused and is nil on the first ask. Implementations
// return an error wrapping ErrInvalidWager for unreadable input.
type WagerPrompter interface {
	RequestWager(s Situation, rejected error) (Chips, error)
}

// HumanAgent keeps asking its prompter until the answer is a legal wager.
type HumanAgent struct {
	prompter WagerPrompter
}

// NewHumanAgent creates a human agent reading wagers from prompter
func NewHumanAgent(prompter WagerPrompter) *HumanAgent {
	return &HumanAgent{prompter: prompter}
}

// Wager blocks until the prompter supplies a valid amount. Errors other than
// ErrInvalidWager, such as the user quitting, are returned as is.
func (h *HumanAgent) Wager(s Situation) (Chips, error) {
	var rejected error
	for {
		amount, err := h.prompter.RequestWager(s, rejected)
		if err != nil {
			if errors.Is(err, ErrInvalidWager) {
				rejected = err
				continue
			}
			return 0, err
		}
		if err := ValidateWager(amount, s); err != nil {
			rejected = err
			continue
		}
		return amount, nil
	}
}

// ValidateWager checks a human wager: the whole stack, zero, or a whole
// number of chips between what is owed and the stack.
func ValidateWager(amount Chips, s Situation) error {
	stack := s.Player.Stack
	switch {
	case amount == stack, amount == 0:
		return nil
	case amount < 0:
		return fmt.Errorf("%w: %v is negative", ErrInvalidWager, amount)
	case amount != Chips(math.Trunc(float64(amount))):
		return fmt.Errorf("%w: %v is not a whole number of chips", ErrInvalidWager, amount)
	case amount > stack:
		return fmt.Errorf("%w: %v is more than your stack of %v", ErrInvalidWager, amount, stack)
	case amount < s.Owed:
		return fmt.Errorf("%w: %v is less than the %v needed to call", ErrInvalidWager, amount, s.Owed)
	}
	return nil
}

// AutomatedAgent wagers from the category of its best hand so far.
type AutomatedAgent struct {
	rng *rand.Rand
}

// NewAutomatedAgent creates an automated agent sizing raises with rng
func NewAutomatedAgent(rng *rand.Rand) *AutomatedAgent {
	return &AutomatedAgent{rng: rng}
}

// Wager shoves with a full house or better, raises a random amount with better
// than one pair, calls with one pair and otherwise puts nothing in.
func (a *AutomatedAgent) Wager(s Situation) (Chips, error) {
	stack := s.Player.Stack
	call := min(s.Owed, stack)

	switch category := evaluator.Categorize(s.Player.Hand, s.Community); {
	case category >= evaluator.FullHouse:
		return stack, nil
	case category > evaluator.OnePair:
		return a.raise(call, stack), nil
	case category >= evaluator.OnePair:
		return call, nil
	default:
		return 0, nil
	}
}

// raise draws uniformly from call plus every whole number of chips that fits
// in the stack, with the full stack always a possible outcome even when it is
// fractional after a split pot.
func (a *AutomatedAgent) raise(call, stack Chips) Chips {
	steps := int(math.Floor(float64(stack - call)))
	if call+Chips(steps) == stack {
		return call + Chips(a.rng.IntN(steps+1))
	}
	if n := a.rng.IntN(steps + 2); n <= steps {
		return call + Chips(n)
	}
	return stack
}
