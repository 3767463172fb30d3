package kernel

import "sync/atomic"

// SerialGenerator hands out container serial numbers. A single counter is
// shared by all kinds and starts at 1; values are never reused, even after the
// container they were issued to leaves every ship.
//
// One generator is owned by the composition root for the lifetime of the
// process. Tests that need predictable sequences create their own.
// The zero value is ready to use and safe for concurrent calls.
type SerialGenerator struct {
	last atomic.Uint64
}

// NewSerialGenerator returns a generator whose first serial has sequence 1.
func NewSerialGenerator() *SerialGenerator {
	return &SerialGenerator{}
}

// Next issues the next serial number for kind.
func (g *SerialGenerator) Next(kind Kind) (SerialNumber, error) {
	if err := kind.Validate(); err != nil {
		return SerialNumber{}, err
	}
	return SerialNumber{kind: kind, sequence: g.last.Add(1)}, nil
}

// Issued returns how many serials the generator has handed out so far.
func (g *SerialGenerator) Issued() uint64 {
	return g.last.Load()
}
