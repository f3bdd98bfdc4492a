package game

import (
	"fmt"
	"strings"
)

// DefaultDoors is the classic three door game.
const DefaultDoors = 3

// MinDoors is the smallest door count where the host has a real choice to make.
const MinDoors = 3

// Prize is what sits behind a door.
type Prize int

const (
	Losing Prize = iota
	Winning
)

func (p Prize) String() string {
	if p == Winning {
		return "car"
	}
	return "goat"
}

// Doors is the prize layout of one game. Exactly one door holds the Winning prize.
type Doors []Prize

// NewDoors lays out numDoors losing doors and places the winning prize behind winner.
func NewDoors(numDoors, winner int) Doors {
	doors := make(Doors, numDoors)
	doors[winner] = Winning
	return doors
}

// Winner returns the index of the winning door, or -1 if there is none.
func (d Doors) Winner() int {
	for i, prize := range d {
		if prize == Winning {
			return i
		}
	}
	return -1
}

// HostChoices returns the doors the host may open: every door that is
// neither the player's pick nor the winning door.
func (d Doors) HostChoices(pick int) []int {
	choices := make([]int, 0, len(d)-1)
	for i, prize := range d {
		if i != pick && prize != Winning {
			choices = append(choices, i)
		}
	}
	return choices
}

// SwitchChoices returns the doors a switching player may move to: every door
// that is neither the original pick nor the one the host opened.
func (d Doors) SwitchChoices(pick, opened int) []int {
	choices := make([]int, 0, len(d)-2)
	for i := range d {
		if i != pick && i != opened {
			choices = append(choices, i)
		}
	}
	return choices
}

func (d Doors) String() string {
	prizes := make([]string, len(d))
	for i, prize := range d {
		prizes[i] = prize.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(prizes, " "))
}
