package sss

import (
	"crypto/rand"
	"io"
	"math/big"
	"math/bits"
	"sync"
)

// maxByteWidth is the largest supported chunk width in bytes. Every prime in
// the table fits in 57 bits, so field elements always fit a uint64.
const maxByteWidth = 7

// fieldPrimes maps a chunk byte width to its field modulus. The table is part
// of the share wire format and must not change. The width-3 entry is smaller
// than 256^3; Split rejects chunks that do not fit it.
var fieldPrimes [maxByteWidth + 1]*big.Int

func init() {
	for width, decimal := range map[int]string{
		1: "257",
		2: "65537",
		3: "1677727",
		4: "4294967311",
		5: "1099511627791",
		6: "281474976710677",
		7: "72057594037928017",
	} {
		p, ok := new(big.Int).SetString(decimal, 10)
		if !ok {
			panic("sss: bad prime table entry")
		}
		fieldPrimes[width] = p
	}
}

// selectPrime picks the field modulus for a share count: the width is the
// minimum number of bytes able to represent shareCount, and the prime is the
// fixed table entry for that width. The share count must stay below the prime
// so every index 1..shareCount is a distinct nonzero field element.
func selectPrime(shareCount int) (*big.Int, int, error) {
	if shareCount < 1 {
		return nil, 0, ErrShareCountRange
	}

	width := (bits.Len(uint(shareCount)) + 7) / 8
	if width > maxByteWidth {
		return nil, 0, ErrShareCountRange
	}

	prime := fieldPrimes[width]
	if new(big.Int).SetInt64(int64(shareCount)).Cmp(prime) >= 0 {
		return nil, 0, ErrShareCountRange
	}

	return prime, width, nil
}

// field carries the modulus and the memoized inverse cache for one scheme
// instance. The cache only grows and is guarded by mu; a different prime
// means a different field.
type field struct {
	prime *big.Int

	mu  sync.Mutex
	inv map[uint64]*big.Int
}

func newField(prime *big.Int) *field {
	return &field{
		prime: prime,
		inv:   make(map[uint64]*big.Int),
	}
}

// modulo reduces n into [0, prime), including for negative n.
func (f *field) modulo(n *big.Int) *big.Int {
	return new(big.Int).Mod(n, f.prime)
}

// add computes (a + b) mod prime
func (f *field) add(a, b *big.Int) *big.Int {
	result := new(big.Int).Add(a, b)
	return result.Mod(result, f.prime)
}

// sub computes (a - b) mod prime
func (f *field) sub(a, b *big.Int) *big.Int {
	result := new(big.Int).Sub(a, b)
	return result.Mod(result, f.prime)
}

// mul computes (a * b) mod prime
func (f *field) mul(a, b *big.Int) *big.Int {
	result := new(big.Int).Mul(a, b)
	return result.Mod(result, f.prime)
}

// neg computes (-a) mod prime
func (f *field) neg(a *big.Int) *big.Int {
	result := new(big.Int).Neg(a)
	return result.Mod(result, f.prime)
}

// inverse returns i⁻¹ mod prime, memoizing results per reduced element.
// Zero maps to zero so a degenerate Lagrange denominator surfaces as a zero
// weight instead of a panic; callers treat a zero weight as a duplicate.
func (f *field) inverse(i *big.Int) *big.Int {
	reduced := f.modulo(i)
	if reduced.Sign() == 0 {
		return new(big.Int)
	}

	key := reduced.Uint64()

	f.mu.Lock()
	defer f.mu.Unlock()

	if inv, ok := f.inv[key]; ok {
		return new(big.Int).Set(inv)
	}

	inv := new(big.Int).ModInverse(reduced, f.prime)
	f.inv[key] = inv

	return new(big.Int).Set(inv)
}

// randomElement draws a uniform nonzero field element from r, rejecting zero.
func (f *field) randomElement(r io.Reader) (*big.Int, error) {
	for {
		n, err := rand.Int(r, f.prime)
		if err != nil {
			return nil, err
		}
		if n.Sign() > 0 {
			return n, nil
		}
	}
}
