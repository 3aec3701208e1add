package montage

// Library maps montage names to their playback duration in seconds.
type Library map[string]float64

// Player plays one montage at a time and tracks its progress so an animation
// graph can read the active clip.
type Player struct {
	lib      Library
	rate     float64
	current  string
	duration float64
	elapsed  float64
}

func NewPlayer(lib Library) *Player {
	return &Player{lib: lib, rate: 1}
}

// SetRate scales playback speed. Durations reported by PlayMontage are in
// real seconds at the current rate.
func (p *Player) SetRate(rate float64) {
	if p == nil || rate <= 0 {
		return
	}
	p.rate = rate
}

// PlayMontage starts name and returns how long it will play. Unknown or
// zero-length montages return 0 and leave the player idle.
func (p *Player) PlayMontage(name string) float64 {
	if p == nil {
		return 0
	}
	length, ok := p.lib[name]
	if !ok || length <= 0 {
		return 0
	}
	p.current = name
	p.duration = length / p.rate
	p.elapsed = 0
	return p.duration
}

// Update advances the active montage and clears it when it ends.
func (p *Player) Update(dt float64) {
	if p == nil || p.current == "" {
		return
	}
	p.elapsed += dt
	if p.elapsed >= p.duration {
		p.current = ""
		p.duration = 0
		p.elapsed = 0
	}
}

// Current returns the playing montage and its normalized progress.
func (p *Player) Current() (string, float64) {
	if p == nil || p.current == "" {
		return "", 0
	}
	return p.current, p.elapsed / p.duration
}
