package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"montyhall/game"
)

// ChartWidth is the number of columns each sparkline spans.
const ChartWidth = 60

var sparks = []rune("▁▂▃▄▅▆▇█")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Width(8)
	rateStyle   = lipgloss.NewStyle().Bold(true).PaddingLeft(2)
	axisStyle   = lipgloss.NewStyle().Faint(true)
	curveStyles = map[game.Strategy]lipgloss.Style{
		game.Stick:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		game.Switch: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
)

// Render draws the running win rate of each strategy as a sparkline, in the
// order of game.Strategies, followed by its final rate.
func Render(w io.Writer, rates []WinRate, numDoors int) error {
	series := Series(rates)

	lines := []string{titleStyle.Render(fmt.Sprintf("Monty Hall Problem (%d doors)", numDoors))}
	for _, s := range game.Strategies {
		curve := series[s]
		final := "no games"
		if len(curve) > 0 {
			final = fmt.Sprintf("%.3f over %d games", curve[len(curve)-1].Rate, len(curve))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(s.String()),
			curveStyles[s].Render(Sparkline(curve, ChartWidth)),
			rateStyle.Render(final),
		))
	}
	lines = append(lines, axisStyle.Render("x: games played  y: probability of winning (0 to 1)"))

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, lines...))
	return err
}

// Sparkline samples a win rate curve into at most width columns, each showing
// the rate reached by the last game in its bucket.
func Sparkline(curve []WinRate, width int) string {
	if len(curve) == 0 || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	columns := min(width, len(curve))

	var b strings.Builder
	for col := 0; col < columns; col++ {
		last := (col+1)*len(curve)/columns - 1
		b.WriteRune(spark(curve[last].Rate))
	}
	b.WriteString(strings.Repeat(" ", width-columns))
	return b.String()
}

func spark(rate float64) rune {
	idx := int(rate * float64(len(sparks)))
	return sparks[max(0, min(idx, len(sparks)-1))]
}
