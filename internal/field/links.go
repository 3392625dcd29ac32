package field

// LinkAlpha returns the stroke alpha of a link of length d. Links at or
// beyond maxDist are not drawn at all, reported by ok == false.
func LinkAlpha(d, maxDist, lineOpacity float64) (alpha float64, ok bool) {
	if !(d < maxDist) || maxDist <= 0 {
		return 0, false
	}
	return lineOpacity * (1 - d/maxDist), true
}

// AppendLinks appends every link of ps to dst and returns the extended
// slice. Each unordered pair is evaluated once (i < j), so the pass costs
// n(n-1)/2 distance checks; that quadratic bound is why fields stay at
// tens of particles.
func AppendLinks(dst []Link, ps []Particle, maxDist, lineOpacity float64) []Link {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := ps[i].Pos.Dist(ps[j].Pos)
			alpha, ok := LinkAlpha(d, maxDist, lineOpacity)
			if !ok {
				continue
			}
			dst = append(dst, Link{I: i, J: j, Dist: d, Alpha: alpha})
		}
	}
	return dst
}
