package experiments

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"montyhall/game"
)

type Option func(r *Runner)

// WithSeed seeds the runner's generator so a run can be reproduced.
func WithSeed(seed uint64) Option {
	return func(r *Runner) {
		r.seed = seed
		r.seeded = true
	}
}

// WithRand replaces the runner's generator. The seed reported by Seed is then meaningless.
func WithRand(source game.Rand) Option {
	return func(r *Runner) {
		if source != nil {
			r.rand = source
		}
	}
}

func WithTracer(tracer game.Tracer) Option {
	return func(r *Runner) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

func WithSwitchPolicy(policy game.SwitchPolicy) Option {
	return func(r *Runner) {
		r.policy = policy
	}
}

// Runner plays repeated games with a randomly chosen strategy each time. A
// Runner owns its generator and is not safe for concurrent use.
type Runner struct {
	seed   uint64
	seeded bool
	rand   game.Rand
	tracer game.Tracer
	policy game.SwitchPolicy
	engine *game.Engine
}

func NewRunner(options ...Option) *Runner {
	r := &Runner{ // Default values
		tracer: game.NewNoTracer(),
		policy: game.SwitchRandom,
	}
	for _, option := range options {
		option(r)
	}
	if !r.seeded {
		r.seed = uint64(time.Now().UnixNano())
	}
	if r.rand == nil {
		r.rand = rand.New(rand.NewSource(r.seed))
	}
	r.engine = game.NewEngine(r.rand, game.WithTracer(r.tracer), game.WithSwitchPolicy(r.policy))
	return r
}

// Seed returns the seed the runner's generator started from.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// SimulateGames plays iterations games with numDoors doors, drawing a
// strategy uniformly for each one, and returns the records in play order.
// Arguments are checked before any game is played; if a game fails, no
// records are returned.
func (r *Runner) SimulateGames(iterations, numDoors int) ([]game.Record, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iterations must not be negative, got %d", game.ErrInvalidArgument, iterations)
	}
	if numDoors < game.MinDoors {
		return nil, fmt.Errorf("%w: number of doors must be at least %d, got %d", game.ErrInvalidArgument, game.MinDoors, numDoors)
	}

	records := make([]game.Record, 0, iterations)
	for i := 0; i < iterations; i++ {
		strategy := game.Strategies[r.rand.Intn(len(game.Strategies))]
		outcome, err := r.engine.Play(strategy, numDoors)
		if err != nil {
			return nil, fmt.Errorf("game %d of %d: %w", i+1, iterations, err)
		}
		records = append(records, game.Record{Strategy: strategy, Outcome: outcome})
	}
	return records, nil
}
