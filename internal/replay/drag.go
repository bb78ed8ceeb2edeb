package replay

type Dismissal int

const (
	DismissSpringBack Dismissal = iota
	DismissClose
)

func (d Dismissal) String() string {
	if d == DismissClose {
		return "close"
	}
	return "spring-back"
}

func (d Dismissal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Drag tracks the vertical dismissal gesture. Translation is the raw finger
// travel, positive downward; upward travel is clamped to zero.
type Drag struct {
	active      bool
	translation float64
}

func (d *Drag) Begin() {
	d.active = true
	d.translation = 0
}

func (d *Drag) Move(translation float64) {
	if !d.active {
		return
	}
	d.translation = max(translation, 0)
}

func (d *Drag) Reset() {
	*d = Drag{}
}

func (d Drag) Active() bool {
	return d.active
}

func (d Drag) Translation() float64 {
	return d.translation
}

// VisualOffset damps the finger travel so the content lags behind it and never
// moves further than cfg.DragMaxOffset.
func (d Drag) VisualOffset(cfg Config) float64 {
	if d.translation <= 0 || cfg.DragMaxOffset <= 0 {
		return 0
	}
	limit := cfg.DragMaxOffset
	return limit * (1 - 1/(d.translation*cfg.DragResistance/limit+1))
}

// Opacity of the backdrop, fading to half while the content is dragged away.
func (d Drag) Opacity(cfg Config) float64 {
	return 1 - 0.5*d.progress(cfg)
}

// Scale of the content, shrinking slightly with the drag.
func (d Drag) Scale(cfg Config) float64 {
	return 1 - 0.15*d.progress(cfg)
}

func (d Drag) progress(cfg Config) float64 {
	if cfg.DragMaxOffset <= 0 {
		return 0
	}
	return d.VisualOffset(cfg) / cfg.DragMaxOffset
}

// Decide picks what happens when the finger lifts.
func Decide(translation, velocity float64, cfg Config) Dismissal {
	if translation > cfg.DismissDistance || velocity > cfg.DismissVelocity {
		return DismissClose
	}
	return DismissSpringBack
}

type DragSnapshot struct {
	Active  bool    `json:"active"`
	Offset  float64 `json:"offset"`
	Opacity float64 `json:"opacity"`
	Scale   float64 `json:"scale"`
}

func (d Drag) Snapshot(cfg Config) DragSnapshot {
	return DragSnapshot{
		Active:  d.active,
		Offset:  d.VisualOffset(cfg),
		Opacity: d.Opacity(cfg),
		Scale:   d.Scale(cfg),
	}
}
