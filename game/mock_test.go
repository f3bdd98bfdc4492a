package game

import "fmt"

// scriptedRand returns pre-recorded draws in order and panics when it runs dry.
type scriptedRand struct {
	draws []int
	calls []int // n passed to each Intn call
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.draws) == 0 {
		panic("scripted rand exhausted")
	}
	draw := r.draws[0]
	r.draws = r.draws[1:]
	if draw < 0 || draw >= n {
		panic(fmt.Sprintf("scripted draw %d out of range [0, %d)", draw, n))
	}
	r.calls = append(r.calls, n)
	return draw
}

type recordingTracer struct {
	events []string
}

func (t *recordingTracer) Doors(doors Doors) {
	t.events = append(t.events, "doors "+doors.String())
}

func (t *recordingTracer) PlayerPicks(door int) {
	t.events = append(t.events, fmt.Sprintf("pick %d", door))
}

func (t *recordingTracer) HostChoices(choices []int) {
	t.events = append(t.events, fmt.Sprintf("choices %v", choices))
}

func (t *recordingTracer) HostOpens(door int, prize Prize) {
	t.events = append(t.events, fmt.Sprintf("opens %d %s", door, prize))
}

func (t *recordingTracer) PlayerSwitches(from, to int) {
	t.events = append(t.events, fmt.Sprintf("switch %d->%d", from, to))
}

func (t *recordingTracer) FinalPick(door int) {
	t.events = append(t.events, fmt.Sprintf("final %d", door))
}

func (t *recordingTracer) Result(outcome Outcome) {
	t.events = append(t.events, "result "+outcome.String())
}
