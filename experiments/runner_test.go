package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"montyhall/game"
)

// countingRand wraps a real generator and counts the draws made through it.
type countingRand struct {
	game.Rand
	draws int
}

func (r *countingRand) Intn(n int) int {
	r.draws++
	return r.Rand.Intn(n)
}

func TestSimulateGames(t *testing.T) {
	t.Run("returns one record per iteration", func(t *testing.T) {
		runner := NewRunner(WithSeed(1))

		records, err := runner.SimulateGames(10, 3)

		require.NoError(t, err)
		require.Len(t, records, 10)
		for _, record := range records {
			require.True(t, record.Strategy.Valid(), "Strategy should be stick or switch")
			require.Contains(t, []game.Outcome{game.Won, game.Lost}, record.Outcome)
		}
	})

	t.Run("zero iterations", func(t *testing.T) {
		runner := NewRunner(WithSeed(1))

		records, err := runner.SimulateGames(0, 3)

		require.NoError(t, err)
		require.NotNil(t, records)
		require.Empty(t, records)
	})

	t.Run("too few doors fails before any game", func(t *testing.T) {
		source := &countingRand{Rand: NewRunner(WithSeed(1)).rand}
		runner := NewRunner(WithRand(source))

		records, err := runner.SimulateGames(5, 2)

		require.ErrorIs(t, err, game.ErrInvalidArgument)
		require.Nil(t, records)
		require.Zero(t, source.draws, "No randomness should be consumed")
	})

	t.Run("negative iterations", func(t *testing.T) {
		runner := NewRunner(WithSeed(1))

		_, err := runner.SimulateGames(-1, 3)

		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("same seed, same games", func(t *testing.T) {
		first, err := NewRunner(WithSeed(99)).SimulateGames(500, 4)
		require.NoError(t, err)
		second, err := NewRunner(WithSeed(99)).SimulateGames(500, 4)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("both strategies are drawn", func(t *testing.T) {
		records, err := NewRunner(WithSeed(3)).SimulateGames(1000, 3)
		require.NoError(t, err)

		switches := 0
		for _, record := range records {
			if record.Strategy == game.Switch {
				switches++
			}
		}
		require.InDelta(t, 500, switches, 100, "Strategies should be drawn about evenly")
	})
}

func TestSimulateGamesWinRates(t *testing.T) {
	records, err := NewRunner(WithSeed(2024)).SimulateGames(20000, game.DefaultDoors)
	require.NoError(t, err)

	wins := map[game.Strategy]int{}
	played := map[game.Strategy]int{}
	for _, record := range records {
		played[record.Strategy]++
		if record.Outcome == game.Won {
			wins[record.Strategy]++
		}
	}

	stick := float64(wins[game.Stick]) / float64(played[game.Stick])
	swap := float64(wins[game.Switch]) / float64(played[game.Switch])
	require.InDelta(t, 1.0/3, stick, 0.03)
	require.InDelta(t, 2.0/3, swap, 0.03)
}

func TestRunnerSeed(t *testing.T) {
	require.Equal(t, uint64(12), NewRunner(WithSeed(12)).Seed())
	require.NotNil(t, NewRunner().rand, "Should default to a clock-seeded generator")
}

func TestRunnerSwitchPolicy(t *testing.T) {
	// With many doors a lowest-index switch and a random switch diverge, but
	// both must still beat sticking.
	for _, policy := range []game.SwitchPolicy{game.SwitchLowest, game.SwitchRandom} {
		records, err := NewRunner(WithSeed(5), WithSwitchPolicy(policy)).SimulateGames(20000, 5)
		require.NoError(t, err)

		var stick, swap, stickPlayed, swapPlayed float64
		for _, record := range records {
			won := 0.0
			if record.Outcome == game.Won {
				won = 1
			}
			if record.Strategy == game.Stick {
				stick += won
				stickPlayed++
			} else {
				swap += won
				swapPlayed++
			}
		}
		// Five doors: sticking wins 1/5, switching wins (4/5)*(1/3) = 4/15
		require.InDelta(t, 1.0/5, stick/stickPlayed, 0.03)
		require.InDelta(t, 4.0/15, swap/swapPlayed, 0.03)
	}
}
