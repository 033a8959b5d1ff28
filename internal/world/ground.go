package world

import "math"

// GroundStripes returns the left edges of the ground texture stripes for a
// background offset. The pattern repeats every GroundStripeSpacing units, so
// the stripes appear to scroll with the world.
func GroundStripes(offset float64) []float64 {
	phase := math.Mod(offset, GroundStripeSpacing)
	if phase < 0 {
		phase += GroundStripeSpacing
	}
	xs := make([]float64, 0, int(WorldWidth/GroundStripeSpacing))
	for x := 0.0; x < WorldWidth; x += GroundStripeSpacing {
		xs = append(xs, x-phase)
	}
	return xs
}
