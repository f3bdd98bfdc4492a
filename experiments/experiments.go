package experiments

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"montyhall/experiments/metrics"
	"montyhall/game"
)

// Result is one finished experiment.
type Result struct {
	Doors   int
	Records []game.Record
	Rates   []metrics.WinRate
	Totals  map[game.Strategy]metrics.Totals
	Dir     string // export directory, empty when not exported
}

// Experiment describes how to run and report one or more simulations.
type Experiment struct {
	Name       string
	Iterations int
	OutputDir  string // root for exported files, export is skipped when empty
	Out        io.Writer
}

// Run simulates e.Iterations games with numDoors doors, renders the running
// win rates to e.Out and exports the results under e.OutputDir.
func (e Experiment) Run(r *Runner, numDoors int) (Result, error) {
	log.Info().Msgf("starting %s experiment with %d games and %d doors (seed=%d)...", e.Name, e.Iterations, numDoors, r.Seed())

	start := time.Now()
	records, err := r.SimulateGames(e.Iterations, numDoors)
	if err != nil {
		return Result{}, err
	}
	end := time.Now()

	result := Result{
		Doors:   numDoors,
		Records: records,
		Rates:   metrics.RunningWinRates(records),
		Totals:  metrics.Tally(records),
	}
	for _, s := range game.Strategies {
		t := result.Totals[s]
		log.Info().Msgf("%s won %d of %d games (%.3f)", s, t.Won, t.Played, t.Rate())
	}
	log.Info().Msgf("completed %s experiment in %s", e.Name, end.Sub(start))

	if e.Out != nil {
		if err := metrics.Render(e.Out, result.Rates, numDoors); err != nil {
			return Result{}, fmt.Errorf("failed to render win rates: %w", err)
		}
	}

	if e.OutputDir != "" {
		dir, err := e.export(result, r.Seed(), start, end)
		if err != nil {
			return Result{}, err
		}
		result.Dir = dir
	}

	return result, nil
}

// Sweep runs one experiment per door count, in order, stopping at the first failure.
func (e Experiment) Sweep(r *Runner, doorCounts []int) ([]Result, error) {
	for _, numDoors := range doorCounts {
		if numDoors < game.MinDoors {
			return nil, fmt.Errorf("%w: number of doors must be at least %d, got %d", game.ErrInvalidArgument, game.MinDoors, numDoors)
		}
	}

	results := make([]Result, 0, len(doorCounts))
	for i, numDoors := range doorCounts {
		log.Info().Msgf("starting sweep %d of %d with %d doors...", i+1, len(doorCounts), numDoors)
		result, err := e.Run(r, numDoors)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (e Experiment) export(result Result, seed uint64, start, end time.Time) (string, error) {
	name := fmt.Sprintf("%s_%ddoors", e.Name, result.Doors)
	writer, err := metrics.NewWriter(e.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(metrics.Setup{
		Name:       e.Name,
		Iterations: e.Iterations,
		Doors:      result.Doors,
		Seed:       seed,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	})
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored experiment setup")

	if err := writer.WriteGameRecords(result.Records); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteWinRates(result.Rates); err != nil {
		return "", err
	}
	log.Info().Msgf("stored win rates in %s", writer.Dir())

	return writer.Dir(), nil
}
