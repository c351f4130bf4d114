package perceptron

import (
	"math/rand"
)

// RNG generates the starting weights and thresholds of a Network.
// Implementations carry their own source, so two Networks built from
// equally-seeded RNGs are identical.
type RNG interface {
	Gen() float64
}

type uniform struct {
	lower, upper float64
	src          *rand.Rand
}

// Uniform returns an RNG that gives values uniformly spread between its
// bounds, which can be set by Bounds. The defaults are the (-0.5, 0.5) range
// that New draws initial weights from.
func Uniform(seed int64) *uniform {
	return &uniform{-0.5, 0.5, rand.New(rand.NewSource(seed))}
}

// Bounds sets the range of a Uniform RNG, returning the same RNG.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	return u.src.Float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	µ, σ float64
	src  *rand.Rand
}

// Normal returns an RNG that gives values within a normal distribution. The
// center and standard deviation can be set by Mean and SD, respectively, and
// default to 0 and 0.5.
func Normal(seed int64) *normal {
	return &normal{0, 0.5, rand.New(rand.NewSource(seed))}
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	return n.src.NormFloat64()*n.σ + n.µ
}
