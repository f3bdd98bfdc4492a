package game

import "github.com/rs/zerolog"

// Tracer observes each decision point of a game. Implementations must not
// draw from the engine's random source.
type Tracer interface {
	Doors(doors Doors)
	PlayerPicks(door int)
	HostChoices(choices []int)
	HostOpens(door int, prize Prize)
	PlayerSwitches(from, to int)
	FinalPick(door int)
	Result(outcome Outcome)
}

type logTracer struct {
	logger zerolog.Logger
}

// NewLogTracer narrates every game step as a debug event on logger.
func NewLogTracer(logger zerolog.Logger) Tracer {
	return &logTracer{logger: logger}
}

func (t *logTracer) Doors(doors Doors) {
	t.logger.Debug().Stringer("doors", doors).Msg("doors laid out")
}

func (t *logTracer) PlayerPicks(door int) {
	t.logger.Debug().Int("door", door).Msg("player picks door")
}

func (t *logTracer) HostChoices(choices []int) {
	t.logger.Debug().Ints("choices", choices).Msg("host choices")
}

func (t *logTracer) HostOpens(door int, prize Prize) {
	t.logger.Debug().Int("door", door).Stringer("prize", prize).Msg("host opens door")
}

func (t *logTracer) PlayerSwitches(from, to int) {
	t.logger.Debug().Int("from", from).Int("to", to).Msg("player switches door")
}

func (t *logTracer) FinalPick(door int) {
	t.logger.Debug().Int("door", door).Msg("player's final door")
}

func (t *logTracer) Result(outcome Outcome) {
	t.logger.Debug().Stringer("outcome", outcome).Msg("game over")
}

type noTracer struct{}

func NewNoTracer() Tracer {
	return &noTracer{}
}

func (t *noTracer) Doors(doors Doors)               {}
func (t *noTracer) PlayerPicks(door int)            {}
func (t *noTracer) HostChoices(choices []int)       {}
func (t *noTracer) HostOpens(door int, prize Prize) {}
func (t *noTracer) PlayerSwitches(from, to int)     {}
func (t *noTracer) FinalPick(door int)              {}
func (t *noTracer) Result(outcome Outcome)          {}
