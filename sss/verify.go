package sss

import (
	"math/big"
)

// VerifyShares checks that the supplied shares are mutually consistent: the
// shares beyond the declared threshold must lie on the per-chunk polynomials
// defined by the first threshold shares. This is a cross-check among shares
// one already holds, not a proof that any single share is well formed.
//
// With exactly threshold shares there is nothing to cross-check and the
// result is nil.
func VerifyShares(rawShares []string) error {
	decoded, err := decodeShares(rawShares)
	if err != nil {
		return err
	}

	ref := decoded[0]
	if len(decoded) == ref.threshold {
		return nil
	}

	f := newField(fieldPrimes[ref.byteWidth])
	base := decoded[:ref.threshold]

	xs := make([]*big.Int, len(base))
	for i, sh := range base {
		xs[i] = big.NewInt(int64(sh.index))
	}

	ys := make([]*big.Int, len(base))
	for _, extra := range decoded[ref.threshold:] {
		x := big.NewInt(int64(extra.index))

		for c := range ref.values {
			for i, sh := range base {
				ys[i] = sh.values[c]
			}

			if lagrangeEvaluate(f, xs, ys, x).Cmp(extra.values[c]) != 0 {
				return ErrShareMismatch
			}
		}
	}

	return nil
}
