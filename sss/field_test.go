package sss

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPrime(t *testing.T) {
	tests := []struct {
		name       string
		shareCount int
		wantPrime  string
		wantWidth  int
		wantErr    error
	}{
		{"minimum", 1, "257", 1, nil},
		{"last single byte", 255, "257", 1, nil},
		{"first two bytes", 256, "65537", 2, nil},
		{"three hundred", 300, "65537", 2, nil},
		{"last two bytes", 65535, "65537", 2, nil},
		{"first three bytes", 65536, "1677727", 3, nil},
		{"four bytes", 16777216, "4294967311", 4, nil},
		{"zero", 0, "", 0, ErrShareCountRange},
		{"negative", -1, "", 0, ErrShareCountRange},
		{"beyond seven bytes", 1 << 56, "", 0, ErrShareCountRange},
		{"three byte prime exceeded", 1677727, "", 0, ErrShareCountRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prime, width, err := selectPrime(tt.shareCount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, width)
			assert.Equal(t, tt.wantPrime, prime.String())
		})
	}
}

func TestPrimeTableExceedsChunkRange(t *testing.T) {
	// Every prime must admit all chunk values of its width. Width 3 is the
	// historical exception; Split guards it with ErrSecretTooLarge.
	for width := 1; width <= maxByteWidth; width++ {
		maxChunk := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
		if width == 3 {
			assert.Equal(t, -1, fieldPrimes[width].Cmp(maxChunk))
			continue
		}
		assert.Equal(t, 1, fieldPrimes[width].Cmp(maxChunk), "width %d", width)
	}
}

func TestFieldOperations(t *testing.T) {
	f := newField(fieldPrimes[1])
	a := big.NewInt(200)
	b := big.NewInt(100)

	t.Run("addition", func(t *testing.T) {
		assert.Equal(t, int64(43), f.add(a, b).Int64()) // 300 mod 257
	})

	t.Run("subtraction", func(t *testing.T) {
		assert.Equal(t, int64(100), f.sub(a, b).Int64())
	})

	t.Run("subtraction wraps", func(t *testing.T) {
		assert.Equal(t, int64(157), f.sub(b, a).Int64()) // -100 mod 257
	})

	t.Run("multiplication", func(t *testing.T) {
		assert.Equal(t, int64(211), f.mul(a, b).Int64()) // 20000 mod 257
	})

	t.Run("negation", func(t *testing.T) {
		assert.Equal(t, int64(57), f.neg(a).Int64()) // -200 mod 257
	})

	t.Run("modulo of negative", func(t *testing.T) {
		assert.Equal(t, int64(256), f.modulo(big.NewInt(-1)).Int64())
	})
}

func TestInverse(t *testing.T) {
	f := newField(fieldPrimes[1])

	t.Run("every nonzero element", func(t *testing.T) {
		one := big.NewInt(1)
		for x := int64(1); x < 257; x++ {
			inv := f.inverse(big.NewInt(x))
			assert.Equal(t, 0, f.mul(big.NewInt(x), inv).Cmp(one), "x=%d", x)
		}
	})

	t.Run("zero maps to zero", func(t *testing.T) {
		assert.Equal(t, 0, f.inverse(big.NewInt(0)).Sign())
	})

	t.Run("negative input reduces first", func(t *testing.T) {
		inv := f.inverse(big.NewInt(-3))
		product := f.mul(f.modulo(big.NewInt(-3)), inv)
		assert.Equal(t, int64(1), product.Int64())
	})

	t.Run("memoized copies are independent", func(t *testing.T) {
		first := f.inverse(big.NewInt(5))
		first.SetInt64(0)
		second := f.inverse(big.NewInt(5))
		assert.NotEqual(t, int64(0), second.Int64())
	})
}

func TestInverseLargePrime(t *testing.T) {
	f := newField(fieldPrimes[7])
	one := big.NewInt(1)

	for _, x := range []int64{1, 2, 86, 1 << 40, 72057594037928016} {
		inv := f.inverse(big.NewInt(x))
		assert.Equal(t, 0, f.mul(big.NewInt(x), inv).Cmp(one), "x=%d", x)
	}
}

func TestRandomElement(t *testing.T) {
	f := newField(fieldPrimes[2])

	for i := 0; i < 64; i++ {
		n, err := f.randomElement(rand.Reader)
		require.NoError(t, err)
		assert.Equal(t, 1, n.Sign())
		assert.Equal(t, -1, n.Cmp(f.prime))
	}
}
