package scoring

import "math"

// Stars maps a 0-100 excitement score onto a 1-5 star display rating in
// half-star steps: 0 -> 1.0, 50 -> 3.0, 100 -> 5.0.
func Stars(score float64) float64 {
	stars := math.Round((1+score/100*4)*2) / 2
	return clamp(stars, 1, 5)
}
