package component

// Trigger raises Event once each time the player enters its area.
type Trigger struct {
	Name   string
	Event  string
	MinX   float64
	MinZ   float64
	MaxX   float64
	MaxZ   float64
	Inside bool
}

func (t *Trigger) Contains(x, z float64) bool {
	return x >= t.MinX && x <= t.MaxX && z >= t.MinZ && z <= t.MaxZ
}

var TriggerComponent = NewComponent[Trigger]()
