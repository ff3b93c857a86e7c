package components

import (
	"github.com/automoto/wallkick/shared/controller"
	"github.com/yohamta/donburi"
)

// ProbeTrace is one environment probe cast during the last fixed step.
type ProbeTrace struct {
	Origin    controller.Vec2
	Direction controller.Direction
	Length    float64
	Hit       controller.Hit
}

// ProbeRecorder passes raycasts through and keeps the ones cast since the
// last Reset, for the debug overlay.
type ProbeRecorder struct {
	Inner  controller.Prober
	Traces []ProbeTrace
}

func (p *ProbeRecorder) Raycast(origin controller.Vec2, dir controller.Direction, maxDistance float64, layer string) controller.Hit {
	hit := p.Inner.Raycast(origin, dir, maxDistance, layer)
	p.Traces = append(p.Traces, ProbeTrace{Origin: origin, Direction: dir, Length: maxDistance, Hit: hit})
	return hit
}

func (p *ProbeRecorder) Reset() {
	p.Traces = p.Traces[:0]
}

// MovementData ties a player entity to its movement controller.
type MovementData struct {
	Controller *controller.Controller
	Probes     *ProbeRecorder
	Last       controller.State // snapshot after the last render step
}

var Movement = donburi.NewComponentType[MovementData]()
