// Package sss implements Shamir's Secret Sharing over a prime field sized to
// the requested share count. Secrets of arbitrary length are chunked into
// fixed-width little-endian integers, each chunk is shared through its own
// random polynomial, and shares travel as compact printable strings that
// embed the recovery metadata (byte width, threshold, share index).
package sss

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
)

// Scheme ties a prime field, its memoized inverse cache and a randomness
// source to one share count. A Scheme is safe for concurrent use; splits with
// a different share count need their own Scheme.
type Scheme struct {
	field      *field
	byteWidth  int
	shareCount int
	rand       io.Reader
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithRandom replaces the source of random integers used for coefficient
// generation. The reader must be cryptographically strong; the default is
// crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(s *Scheme) {
		s.rand = r
	}
}

// NewScheme sizes a prime field to the share count and prepares the inverse
// cache tied to it.
func NewScheme(shareCount int, opts ...Option) (*Scheme, error) {
	if strings.ContainsRune(alphabet, padSymbol) {
		return nil, ErrPadSymbolInAlphabet
	}

	prime, byteWidth, err := selectPrime(shareCount)
	if err != nil {
		return nil, err
	}

	s := &Scheme{
		field:      newField(prime),
		byteWidth:  byteWidth,
		shareCount: shareCount,
		rand:       rand.Reader,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Split divides a secret into shareCount share strings, any threshold of
// which reconstruct it. The secret may be empty or of any length.
func Split(secret []byte, shareCount, threshold int) ([]string, error) {
	s, err := NewScheme(shareCount)
	if err != nil {
		return nil, err
	}
	return s.Split(secret, threshold)
}

// Split divides a secret into the scheme's share count of share strings.
func (s *Scheme) Split(secret []byte, threshold int) ([]string, error) {
	if threshold < 2 {
		return nil, ErrInvalidThreshold
	}
	if threshold > s.shareCount {
		return nil, ErrShareCountRange
	}

	chunks, padBytes := chunkSecret(secret, s.byteWidth)

	// One y value per chunk per share index.
	values := make([][]*big.Int, s.shareCount)
	for i := range values {
		values[i] = make([]*big.Int, len(chunks))
	}

	for c, chunk := range chunks {
		if chunk.Cmp(s.field.prime) >= 0 {
			return nil, ErrSecretTooLarge
		}

		poly, err := newRandomPolynomial(s.field, chunk, threshold, s.rand)
		if err != nil {
			return nil, err
		}

		for i := 0; i < s.shareCount; i++ {
			values[i][c] = poly.evaluate(big.NewInt(int64(i + 1)))
		}
	}

	shares := make([]string, s.shareCount)
	for i := range shares {
		sh := &share{
			byteWidth: s.byteWidth,
			threshold: threshold,
			index:     i + 1,
			values:    values[i],
			padBytes:  padBytes,
		}
		shares[i] = sh.encode()
	}

	return shares, nil
}

// Recover reconstructs the secret from share strings. The byte width,
// threshold and prime are read from the shares themselves; at least the
// declared threshold of mutually compatible shares is required.
func Recover(rawShares []string) ([]byte, error) {
	decoded, err := decodeShares(rawShares)
	if err != nil {
		return nil, err
	}
	return recoverSecret(newField(fieldPrimes[decoded[0].byteWidth]), decoded)
}

// Recover reconstructs a secret that was split with this scheme's share
// count, reusing the scheme's inverse cache. Shares from a scheme with a
// different byte width are rejected as incompatible.
func (s *Scheme) Recover(rawShares []string) ([]byte, error) {
	decoded, err := decodeShares(rawShares)
	if err != nil {
		return nil, err
	}
	if decoded[0].byteWidth != s.byteWidth {
		return nil, ErrIncompatibleShares
	}
	return recoverSecret(s.field, decoded)
}

// decodeShares parses every share and enforces the cross-share invariants:
// agreement on byte width, threshold, body length and pad count, distinct
// indices, and at least the declared threshold of shares.
func decodeShares(rawShares []string) ([]*share, error) {
	if len(rawShares) == 0 {
		return nil, ErrNoShares
	}

	decoded := make([]*share, len(rawShares))
	for i, raw := range rawShares {
		sh, err := decodeShare(raw)
		if err != nil {
			return nil, err
		}
		decoded[i] = sh
	}

	ref := decoded[0]
	seen := make(map[int]bool, len(decoded))
	for _, sh := range decoded {
		if sh.byteWidth != ref.byteWidth ||
			sh.threshold != ref.threshold ||
			len(sh.values) != len(ref.values) ||
			sh.padBytes != ref.padBytes {
			return nil, ErrIncompatibleShares
		}
		if seen[sh.index] {
			return nil, ErrDuplicateShare
		}
		seen[sh.index] = true
	}

	if len(decoded) < ref.threshold {
		return nil, ErrInsufficientShares
	}

	return decoded, nil
}

// recoverSecret interpolates every chunk at x=0 and reassembles the secret.
func recoverSecret(f *field, decoded []*share) ([]byte, error) {
	ref := decoded[0]
	used := decoded[:ref.threshold]

	xs := make([]*big.Int, len(used))
	for i, sh := range used {
		xs[i] = big.NewInt(int64(sh.index))
	}

	// Weights depend only on the x set, so they are computed once and reused
	// for every chunk.
	weights, err := reverseCoefficients(f, xs)
	if err != nil {
		return nil, err
	}

	secret := make([]byte, 0, len(ref.values)*ref.byteWidth)
	ys := make([]*big.Int, len(used))

	for c := range ref.values {
		for i, sh := range used {
			ys[i] = sh.values[c]
		}

		chunk := interpolate(f, weights, ys)

		raw, err := chunkBytes(chunk, ref.byteWidth)
		if err != nil {
			return nil, err
		}
		secret = append(secret, raw...)
	}

	return secret[:len(secret)-ref.padBytes], nil
}

// chunkSecret packs the secret into little-endian byteWidth-byte integers.
// The final chunk is zero-extended; the count of synthetic bytes is returned
// so the share codec can record it.
func chunkSecret(secret []byte, byteWidth int) ([]*big.Int, int) {
	if len(secret) == 0 {
		return nil, 0
	}

	numChunks := (len(secret) + byteWidth - 1) / byteWidth
	chunks := make([]*big.Int, numChunks)

	for i := range chunks {
		start := i * byteWidth
		end := min(start+byteWidth, len(secret))

		value := new(big.Int)
		for j := end - 1; j >= start; j-- {
			value.Lsh(value, 8)
			value.Or(value, big.NewInt(int64(secret[j])))
		}
		chunks[i] = value
	}

	return chunks, numChunks*byteWidth - len(secret)
}

// chunkBytes renders a reconstructed chunk back into byteWidth little-endian
// bytes. A value that does not fit means the shares were tampered with.
func chunkBytes(value *big.Int, byteWidth int) ([]byte, error) {
	out := make([]byte, byteWidth)
	remaining := new(big.Int).Set(value)
	low := new(big.Int)

	for i := range out {
		out[i] = byte(low.And(remaining, big.NewInt(0xff)).Uint64())
		remaining.Rsh(remaining, 8)
	}

	if remaining.Sign() != 0 {
		return nil, ErrMalformedShare
	}

	return out, nil
}
