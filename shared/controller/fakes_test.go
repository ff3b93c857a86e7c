package controller

const (
	testWidth  = 0.75
	testHeight = 1.5
	testDt     = 0.02
)

type fakeBody struct {
	vel       Vec2
	col       Collider
	mass      float64
	resizes   int
	roomCalls int
	roomOK    bool
}

func newFakeBody() *fakeBody {
	return &fakeBody{col: Collider{Height: testHeight}, mass: 1}
}

func (b *fakeBody) Velocity() Vec2     { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2) { b.vel = v }
func (b *fakeBody) Mass() float64      { return b.mass }
func (b *fakeBody) Collider() Collider { return b.col }
func (b *fakeBody) SetCollider(c Collider) {
	b.col = c
	b.resizes++
}

func (b *fakeBody) Bounds() Rect {
	return Rect{MinX: 0, MinY: 0, MaxX: testWidth, MaxY: b.col.Height}
}

func (b *fakeBody) MakeRoom(height float64, preferLeft bool) bool {
	b.roomCalls++
	return b.roomOK
}

type cast struct {
	origin Vec2
	dir    Direction
	length float64
	layer  string
}

type fakeProber struct {
	hits  map[Direction]Hit
	casts []cast
}

func newFakeProber() *fakeProber {
	return &fakeProber{hits: map[Direction]Hit{}}
}

func (p *fakeProber) Raycast(origin Vec2, dir Direction, maxDistance float64, layer string) Hit {
	p.casts = append(p.casts, cast{origin, dir, maxDistance, layer})
	h, ok := p.hits[dir]
	if !ok || h.Distance > maxDistance {
		return Hit{}
	}
	return h
}

func (p *fakeProber) lastCast(dir Direction) (cast, bool) {
	for i := len(p.casts) - 1; i >= 0; i-- {
		if p.casts[i].dir == dir {
			return p.casts[i], true
		}
	}
	return cast{}, false
}

type fakeInput struct {
	held, down, up map[Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[Key]bool{}, down: map[Key]bool{}, up: map[Key]bool{}}
}

func (in *fakeInput) Held(k Key) bool     { return in.held[k] }
func (in *fakeInput) DownEdge(k Key) bool { return in.down[k] }
func (in *fakeInput) UpEdge(k Key) bool   { return in.up[k] }

func (in *fakeInput) press(k Key) {
	in.held[k] = true
	in.down[k] = true
}

func (in *fakeInput) release(k Key) {
	in.held[k] = false
	in.up[k] = true
}

// endFrame drops this frame's edges.
func (in *fakeInput) endFrame() {
	in.down = map[Key]bool{}
	in.up = map[Key]bool{}
}

type fakeAnimator map[string]bool

func (a fakeAnimator) SetBool(name string, value bool) { a[name] = value }

type rig struct {
	c      *Controller
	body   *fakeBody
	probe  *fakeProber
	input  *fakeInput
	anim   fakeAnimator
	tuning Tuning
}

func newRig(t Tuning) *rig {
	r := &rig{
		body:   newFakeBody(),
		probe:  newFakeProber(),
		input:  newFakeInput(),
		anim:   fakeAnimator{},
		tuning: t,
	}
	c, err := New(t, Deps{Body: r.body, Prober: r.probe, Input: r.input, Animator: r.anim})
	if err != nil {
		panic(err)
	}
	r.c = c
	return r
}

func (r *rig) ground()   { r.probe.hits[Down] = Hit{Hit: true, Distance: 0, SurfaceTag: "stone"} }
func (r *rig) airborne() { delete(r.probe.hits, Down) }

// frame runs n fixed steps followed by one render step.
func (r *rig) frame(n int) {
	for i := 0; i < n; i++ {
		r.c.FixedStep(testDt)
	}
	r.c.RenderStep()
	r.input.endFrame()
}
