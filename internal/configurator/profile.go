package configurator

import "math"

// ProfileDimensions is the length of a profile vector
const ProfileDimensions = 5

// spaceTypeWeight stretches the space type axis past the widest spread of the
// other four axes (sqrt(4*2*2) = 4), so a different kind is always farther.
const spaceTypeWeight = 5

// ProfileVector encodes the categorical answers as ordinals
// [spaceType, spaceSize, guestsCount, canopyType, style]. Unanswered fields
// take the middle of their scale.
func ProfileVector(a Answers) []float32 {
	return []float32{
		spaceTypeWeight * ordinal(string(a.SpaceType), "mangal", "kitchen", "complex"),
		ordinal(string(a.SpaceSize), "compact", "standard", "premium"),
		ordinal(string(a.GuestsCount), "4-6", "8-10", "12+"),
		ordinal(string(a.CanopyType), "none", "light", "capital"),
		ordinal(string(a.Style), "minimalist", "classic", "premium"),
	}
}

// Distance is the euclidean distance between two profile vectors
func Distance(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// MaxDistance is the largest possible distance between two profiles
func MaxDistance() float64 {
	return math.Sqrt(spaceTypeWeight*spaceTypeWeight*4 + 4*4)
}

func ordinal(v string, scale ...string) float32 {
	for i, s := range scale {
		if s == v {
			return float32(i)
		}
	}
	return float32(len(scale)-1) / 2
}
