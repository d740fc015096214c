package sss

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareEncodeDecode(t *testing.T) {
	tests := []struct {
		name  string
		share share
		want  string
	}{
		{
			name: "single byte single chunk",
			share: share{
				byteWidth: 1,
				threshold: 2,
				index:     1,
				values:    []*big.Int{big.NewInt(5)},
			},
			want: "1020105",
		},
		{
			name: "single byte multiple chunks",
			share: share{
				byteWidth: 1,
				threshold: 3,
				index:     12,
				values:    []*big.Int{big.NewInt(256), big.NewInt(0)},
			},
			want: "1030c5l00",
		},
		{
			name: "two byte width with padding",
			share: share{
				byteWidth: 2,
				threshold: 3,
				index:     300,
				values:    []*big.Int{big.NewInt(65536), big.NewInt(7)},
				padBytes:  1,
			},
			want: "200306itvi007=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.share.encode()
			assert.Equal(t, tt.want, encoded)

			decoded, err := decodeShare(encoded)
			require.NoError(t, err)

			assert.Equal(t, tt.share.byteWidth, decoded.byteWidth)
			assert.Equal(t, tt.share.threshold, decoded.threshold)
			assert.Equal(t, tt.share.index, decoded.index)
			assert.Equal(t, tt.share.padBytes, decoded.padBytes)

			require.Len(t, decoded.values, len(tt.share.values))
			for i, v := range tt.share.values {
				assert.Equal(t, 0, decoded.values[i].Cmp(v), "value %d", i)
			}
		})
	}
}

func TestDecodeShareMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"zero width digit", "0020105"},
		{"width beyond table", "8020105"},
		{"non hex width digit", "z020105"},
		{"truncated header", "102"},
		{"body not multiple of field width", "10201055"},
		{"pad symbol inside body", "1030c5l=0012"},
		{"pad count reaches byte width", "1020105="},
		{"pad with empty body", "10201="},
		{"index zero", "1020005"},
		{"threshold below two", "1010105"},
		{"symbol outside alphabet", "102010?"},
		{"uppercase symbol", "102010A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeShare(tt.raw)
			assert.ErrorIs(t, err, ErrMalformedShare)
		})
	}
}

func TestDecodeShareIndexBeyondPrime(t *testing.T) {
	// An index field can hold values up to 47^2-1 = 2208, but the width-1
	// field only has 257 elements.
	sh := share{byteWidth: 1, threshold: 2, index: 1, values: []*big.Int{big.NewInt(5)}}
	raw := sh.encode()

	tampered := raw[:3] + ".." + raw[5:] // index field becomes 46*47+46 = 2208
	_, err := decodeShare(tampered)
	assert.ErrorIs(t, err, ErrMalformedShare)
}

func TestDecodeShareEmptyBody(t *testing.T) {
	// A split of the empty secret produces header-only shares.
	decoded, err := decodeShare("10201")
	require.NoError(t, err)

	assert.Equal(t, 1, decoded.byteWidth)
	assert.Equal(t, 2, decoded.threshold)
	assert.Equal(t, 1, decoded.index)
	assert.Empty(t, decoded.values)
	assert.Zero(t, decoded.padBytes)
}

func TestShareHeaderWidthDigit(t *testing.T) {
	sh := share{byteWidth: 2, threshold: 2, index: 1, values: []*big.Int{big.NewInt(1)}}
	assert.True(t, strings.HasPrefix(sh.encode(), "2"))
}
