package game

import "fmt"

// Strategy is the player's policy once the host has opened a door.
type Strategy int

const (
	Stick Strategy = iota
	Switch
)

// Strategies lists every valid strategy in declaration order.
var Strategies = []Strategy{Stick, Switch}

var strategyNames = map[Strategy]string{
	Stick:  "stick",
	Switch: "switch",
}

// ParseStrategy converts the string form ("stick" or "switch") into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for strategy, name := range strategyNames {
		if name == s {
			return strategy, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidArgument, s)
}

func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Outcome is the result of a single game.
type Outcome int

const (
	Lost Outcome = iota
	Won
)

func (o Outcome) String() string {
	if o == Won {
		return "won"
	}
	return "lost"
}

// Record is the strategy played in one game and its outcome.
type Record struct {
	Strategy Strategy
	Outcome  Outcome
}
