// Package mapseed derives the single PRNG stream a generation run draws
// from: a seed string hashes into the stream's source, and the stream's
// first draw, scaled by 1000, becomes the noise oracle's z coordinate.
package mapseed

import (
	"math"
	"math/rand"
	"time"
)

const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const seedStringLength = 20

// Hash computes hash(s) = (sum s[i]*2^i) mod 2^32, matching the weak but
// reproducible scheme every port of this generator must agree on bit for
// bit.
func Hash(s string) uint32 {
	var sum uint64
	for i := 0; i < len(s); i++ {
		sum += uint64(s[i]) * uint64(math.Pow(2, float64(i)))
	}

	return uint32(sum % (1 << 32))
}

// randomSeedString draws a seedStringLength-character alphanumeric string
// from a wall-clock-seeded source, used only when the caller supplies no
// seed.
func randomSeedString() string {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))

	buf := make([]byte, seedStringLength)
	for i := range buf {
		buf[i] = alphanum[src.Intn(len(alphanum))]
	}

	return string(buf)
}

// Stream is the single owned PRNG for one generation run. It never reads
// global math/rand state, so two Streams built from the same seed string
// draw identically regardless of what else is running.
type Stream struct {
	rng *rand.Rand

	// Str is the seed string this stream was hashed from (generated if the
	// caller passed an empty one).
	Str string

	// Z is the first draw from the stream scaled by 1000, used as the noise
	// oracle's z coordinate for the whole run.
	Z float64
}

// New builds a Stream. If seedString is empty one is generated from
// wall-clock time; otherwise it is used as given. The stream's source is
// seeded from Hash(Str), and its very first draw (Z) is consumed here —
// callers must not draw anything before reading Z.
func New(seedString string) *Stream {
	if seedString == "" {
		seedString = randomSeedString()
	}

	rng := rand.New(rand.NewSource(int64(Hash(seedString))))

	return newFromRand(seedString, rng)
}

// NewFromRand builds a Stream whose source is rng directly, instead of one
// derived from Hash(seedString). Used when a caller wants to inject a
// fully deterministic external source while keeping Str for bookkeeping.
func NewFromRand(seedString string, rng *rand.Rand) *Stream {
	if seedString == "" {
		seedString = randomSeedString()
	}

	return newFromRand(seedString, rng)
}

func newFromRand(seedString string, rng *rand.Rand) *Stream {
	z := rng.Float64() * 1000

	return &Stream{rng: rng, Str: seedString, Z: z}
}

// Float64 draws the next uniform value in [0,1) from the stream.
func (s *Stream) Float64() float64 { return s.rng.Float64() }
