package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDoors(t *testing.T) {
	for numDoors := MinDoors; numDoors <= 10; numDoors++ {
		for winner := 0; winner < numDoors; winner++ {
			doors := NewDoors(numDoors, winner)

			require.Len(t, doors, numDoors)
			winning := 0
			for _, prize := range doors {
				if prize == Winning {
					winning++
				}
			}
			require.Equal(t, 1, winning, "Should have exactly one winning door")
			require.Equal(t, winner, doors.Winner())
		}
	}
}

func TestHostChoices(t *testing.T) {
	t.Run("three doors leave exactly one choice", func(t *testing.T) {
		for winner := 0; winner < 3; winner++ {
			for pick := 0; pick < 3; pick++ {
				choices := NewDoors(3, winner).HostChoices(pick)
				if pick == winner {
					require.Len(t, choices, 2, "Host may open either losing door")
				} else {
					require.Len(t, choices, 1, "Host is forced to open the only other losing door")
				}
			}
		}
	})

	t.Run("choice count depends on whether the pick wins", func(t *testing.T) {
		for k := 3; k <= 8; k++ {
			for winner := 0; winner < k; winner++ {
				for pick := 0; pick < k; pick++ {
					doors := NewDoors(k, winner)
					choices := doors.HostChoices(pick)

					expected := k - 2
					if pick == winner {
						expected = k - 1
					}
					require.Len(t, choices, expected)
					for _, c := range choices {
						require.NotEqual(t, pick, c, "Host never opens the player's door")
						require.Equal(t, Losing, doors[c], "Host never opens the winning door")
					}
				}
			}
		}
	})
}

func TestSwitchChoices(t *testing.T) {
	doors := NewDoors(5, 3)

	require.Equal(t, []int{2, 3, 4}, doors.SwitchChoices(0, 1))
	require.Equal(t, []int{1}, NewDoors(3, 1).SwitchChoices(0, 2))
}

func TestDoorsString(t *testing.T) {
	require.Equal(t, "[goat car goat]", NewDoors(3, 1).String())
}
