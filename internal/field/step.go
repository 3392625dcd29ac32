package field

import "math"

// Step advances every particle by one tick: integrate, wrap, then push away
// from the pointer. It returns how many particles were repelled.
//
// Particles are independent within a tick, so the order of updates does not
// matter. Repulsion runs after the wrap and may leave a particle slightly
// outside [0,w)x[0,h) until the next tick wraps it.
func Step(ps []Particle, w, h float64, pointer Pointer, cfg Config) int {
	repelled := 0
	for i := range ps {
		p := &ps[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Pos.X = wrap(p.Pos.X, w)
		p.Pos.Y = wrap(p.Pos.Y, h)

		if repel(p, pointer, cfg.RepelRadius, cfg.RepelStrength) {
			repelled++
		}
	}
	return repelled
}

// repel moves p by a fixed strength directly away from the pointer when it
// is within radius. A particle exactly on the pointer has no direction and
// is left alone.
func repel(p *Particle, pointer Pointer, radius, strength float64) bool {
	delta := p.Pos.Sub(pointer)
	d := delta.Len()
	if d >= radius || d == 0 {
		return false
	}
	p.Pos = p.Pos.Add(delta.Scale(strength / d))
	return true
}

// wrap moves a coordinate that left [0,size) to the opposite edge. The far
// edge itself is excluded, so a particle leaving below 0 lands one ulp
// short of size.
func wrap(v, size float64) float64 {
	switch {
	case !(size > 0):
		return 0
	case v < 0:
		return math.Nextafter(size, 0)
	case v >= size || math.IsNaN(v):
		return 0
	}
	return v
}
