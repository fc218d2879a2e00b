package sim

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/san-kum/gravbox/internal/geom"
)

const velocityRange = 20 // spawn velocity components are drawn from [-20, 20]

var (
	processOnce sync.Once
	processRand *rand.Rand
)

// processSource returns the process-wide random source, seeded once from
// the OS entropy pool at first use.
func processSource() *rand.Rand {
	processOnce.Do(func() {
		var buf [8]byte
		if _, err := cryptorand.Read(buf[:]); err != nil {
			// Entropy read failing is effectively impossible on supported
			// platforms; fall back to a fixed seed rather than aborting an
			// animation.
			processRand = rand.New(rand.NewSource(1))
			return
		}
		processRand = rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(buf[:]))))
	})
	return processRand
}

// randInt draws uniformly from the inclusive range [low, high].
func randInt(rng *rand.Rand, low, high int) int {
	return low + rng.Intn(high-low+1)
}

// RandomColor draws each channel uniformly from [0, 255], alpha opaque.
func RandomColor(rng *rand.Rand) geom.Color {
	return geom.RGB(
		uint8(randInt(rng, 0, 255)),
		uint8(randInt(rng, 0, 255)),
		uint8(randInt(rng, 0, 255)),
	)
}

// RandomVelocity draws integer components uniformly from [-20, 20].
func RandomVelocity(rng *rand.Rand) geom.Vec2 {
	return geom.NewVec2(
		float64(randInt(rng, -velocityRange, velocityRange)),
		float64(randInt(rng, -velocityRange, velocityRange)),
	)
}
