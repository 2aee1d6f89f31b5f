package geom

import randv2 "math/rand/v2"

// newTestRand returns the deterministic generator used by the package
// tests.
func newTestRand(seed uint64) *randv2.Rand {
	return randv2.New(randv2.NewPCG(seed, seed))
}
