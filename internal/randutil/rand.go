// Package randutil derives reproducible random sources for dealing.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG source seeded from a single int64, so one number on
// the command line reproduces a whole deal.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// SeedFrom picks a non-zero seed from a timestamp.
func SeedFrom(t time.Time) int64 {
	if s := int64(mix(uint64(t.UnixNano())) >> 1); s != 0 {
		return s
	}
	return 1
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
