package game

import "fmt"

// Rand is the random source the engine draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SwitchPolicy decides which door a switching player moves to when more
// than one unopened door remains (games with more than three doors).
type SwitchPolicy int

const (
	// SwitchRandom moves to one of the remaining doors uniformly at random.
	SwitchRandom SwitchPolicy = iota
	// SwitchLowest moves to the remaining door with the lowest index.
	SwitchLowest
)

var switchPolicyNames = map[SwitchPolicy]string{
	SwitchRandom: "random",
	SwitchLowest: "lowest",
}

// ParseSwitchPolicy converts "random" or "lowest" into a SwitchPolicy.
func ParseSwitchPolicy(s string) (SwitchPolicy, error) {
	for policy, name := range switchPolicyNames {
		if name == s {
			return policy, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown switch policy %q", ErrInvalidArgument, s)
}

func (p SwitchPolicy) String() string {
	if name, ok := switchPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("SwitchPolicy(%d)", int(p))
}

type Option func(e *Engine)

func WithTracer(tracer Tracer) Option {
	return func(e *Engine) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

func WithSwitchPolicy(policy SwitchPolicy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// Engine plays single games of the Monty Hall problem.
type Engine struct {
	rand   Rand
	tracer Tracer
	policy SwitchPolicy
}

func NewEngine(rand Rand, options ...Option) *Engine {
	if rand == nil {
		panic("engine requires a random source")
	}
	e := &Engine{ // Default values
		rand:   rand,
		tracer: NewNoTracer(),
		policy: SwitchRandom,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Validate checks the game parameters without touching the random source.
func Validate(strategy Strategy, numDoors int) error {
	if numDoors < MinDoors {
		return fmt.Errorf("%w: number of doors must be at least %d, got %d", ErrInvalidArgument, MinDoors, numDoors)
	}
	if !strategy.Valid() {
		return fmt.Errorf("%w: unknown strategy %v", ErrInvalidArgument, strategy)
	}
	return nil
}

// PlayString plays a game with the strategy given in its string form.
func (e *Engine) PlayString(strategy string, numDoors int) (Outcome, error) {
	s, err := ParseStrategy(strategy)
	if err != nil {
		return Lost, err
	}
	return e.Play(s, numDoors)
}

// Play runs one game with numDoors doors and returns whether the player won.
func (e *Engine) Play(strategy Strategy, numDoors int) (Outcome, error) {
	if err := Validate(strategy, numDoors); err != nil {
		return Lost, err
	}

	doors := NewDoors(numDoors, e.rand.Intn(numDoors))
	e.tracer.Doors(doors)

	// 1. Player picks a door, it stays closed
	pick := e.rand.Intn(numDoors)
	e.tracer.PlayerPicks(pick)

	// 2. Host opens a losing door the player did not pick
	choices := doors.HostChoices(pick)
	e.tracer.HostChoices(choices)
	opened := choices[e.rand.Intn(len(choices))]
	e.tracer.HostOpens(opened, doors[opened])

	// 3. Player sticks or switches to a door still closed
	if strategy == Switch {
		next := e.switchTo(doors.SwitchChoices(pick, opened))
		e.tracer.PlayerSwitches(pick, next)
		pick = next
	}
	e.tracer.FinalPick(pick)

	outcome := Lost
	if doors[pick] == Winning {
		outcome = Won
	}
	e.tracer.Result(outcome)
	return outcome, nil
}

func (e *Engine) switchTo(candidates []int) int {
	if len(candidates) == 1 || e.policy == SwitchLowest {
		return candidates[0]
	}
	return candidates[e.rand.Intn(len(candidates))]
}
