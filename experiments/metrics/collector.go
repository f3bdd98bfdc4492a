package metrics

import "montyhall/game"

// Totals are the cumulative games played and won with one strategy.
type Totals struct {
	Played int
	Won    int
}

// Rate is the fraction of games won, or 0 before any game is played.
func (t Totals) Rate() float64 {
	if t.Played == 0 {
		return 0
	}
	return float64(t.Won) / float64(t.Played)
}

// WinRate is one point of a strategy's running win rate curve.
type WinRate struct {
	Game     int // 1-based position in play order across all strategies
	Rate     float64
	Strategy game.Strategy
}

// Collector accumulates per-strategy totals as games are recorded in play order.
type Collector struct {
	totals map[game.Strategy]*Totals
	games  int
}

func NewCollector() *Collector {
	totals := make(map[game.Strategy]*Totals, len(game.Strategies))
	for _, s := range game.Strategies {
		totals[s] = &Totals{}
	}
	return &Collector{totals: totals}
}

// Add records one game and returns the running win rate of its strategy.
func (c *Collector) Add(record game.Record) WinRate {
	t, ok := c.totals[record.Strategy]
	if !ok {
		t = &Totals{}
		c.totals[record.Strategy] = t
	}
	t.Played++
	if record.Outcome == game.Won {
		t.Won++
	}
	c.games++
	return WinRate{Game: c.games, Rate: t.Rate(), Strategy: record.Strategy}
}

func (c *Collector) Games() int {
	return c.games
}

// Totals returns a copy of the per-strategy totals.
func (c *Collector) Totals() map[game.Strategy]Totals {
	out := make(map[game.Strategy]Totals, len(c.totals))
	for s, t := range c.totals {
		out[s] = *t
	}
	return out
}

// RunningWinRates computes, for every game in play order, the cumulative win
// rate of the strategy played in it. records is not modified.
func RunningWinRates(records []game.Record) []WinRate {
	c := NewCollector()
	rates := make([]WinRate, 0, len(records))
	for _, record := range records {
		rates = append(rates, c.Add(record))
	}
	return rates
}

// Tally sums wins and games per strategy.
func Tally(records []game.Record) map[game.Strategy]Totals {
	c := NewCollector()
	for _, record := range records {
		c.Add(record)
	}
	return c.Totals()
}

// Series splits running win rates into one curve per strategy, keeping play order.
func Series(rates []WinRate) map[game.Strategy][]WinRate {
	series := make(map[game.Strategy][]WinRate, len(game.Strategies))
	for _, rate := range rates {
		series[rate.Strategy] = append(series[rate.Strategy], rate)
	}
	return series
}
