package parameter

// Frame listener priorities (lower runs first)
const (
	PriorityAnimation = 100 // timed animations write properties before anything draws
	PriorityWave      = 200 // wave field strokes onto the canvas
)
