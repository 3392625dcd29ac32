package field

import "math/rand"

// Populate samples a fresh store of cfg.Count particles over [0,w)x[0,h).
// Every particle is drawn independently; nothing from a previous store is
// reused.
func Populate(rng *rand.Rand, w, h float64, cfg Config) []Particle {
	ps := make([]Particle, cfg.Count)
	for i := range ps {
		ps[i] = Particle{
			Pos: Vec2{
				X: rng.Float64() * w,
				Y: rng.Float64() * h,
			},
			Vel: Vec2{
				X: (rng.Float64() - 0.5) * cfg.Speed,
				Y: (rng.Float64() - 0.5) * cfg.Speed,
			},
			Radius: cfg.ParticleRadius + rng.Float64()*RadiusJitter,
		}
	}
	return ps
}
