package service

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand/v2"
	"sync"
)

// cryptoSource is a math/rand/v2 Source backed by crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewCryptoSource creates a cryptographically secure RandomSource. It keeps no state of its
// own, so concurrent callers never contend with each other.
func NewCryptoSource() RandomSource {
	return mathrand.New(cryptoSource{})
}

// lockedSource serializes access to a seeded generator.
type lockedSource struct {
	mu  sync.Mutex
	rnd *mathrand.Rand
}

// NewSeededSource creates a reproducible RandomSource: two sources built from the same seed
// return the same sequence when drawn from in the same order.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{
		rnd: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// IntN returns a uniform integer in [0, n).
func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
