package sss

import (
	"math/big"
	"strings"
)

const (
	// alphabet is the working symbol set for encoded header and body fields:
	// digits, lowercase letters and eleven punctuation marks, 47 symbols.
	// It is part of the share wire format and must not change.
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz!#$%&()*+-."

	// padSymbol marks missing trailing secret bytes at the end of a share
	// body. It must never appear in the working alphabet.
	padSymbol = '='

	// decimalAlphabet is the canonical base-10 symbol set.
	decimalAlphabet = "0123456789"
)

// encodedLen[w] is the number of alphabet symbols needed to represent
// 2^(8w)-1, the fixed width of every encoded field for chunk width w.
var encodedLen [maxByteWidth + 1]int

func init() {
	for width := 1; width <= maxByteWidth; width++ {
		maxValue := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
		maxValue.Sub(maxValue, big.NewInt(1))
		encodedLen[width] = len(toAlphabet(maxValue, alphabet))
	}
}

// maxEncodedLength returns the fixed symbol width of an encoded field for the
// given chunk byte width.
func maxEncodedLength(byteWidth int) int {
	return encodedLen[byteWidth]
}

// convertBase reinterprets a digit string from one symbol alphabet to
// another with arbitrary precision. Identical alphabets short-circuit.
func convertBase(digits, fromAlphabet, targetAlphabet string) (string, error) {
	if fromAlphabet == targetAlphabet {
		return digits, nil
	}

	value, err := parseAlphabet(digits, fromAlphabet)
	if err != nil {
		return "", err
	}

	return toAlphabet(value, targetAlphabet), nil
}

// parseAlphabet accumulates a digit string into an integer, Horner style.
// Symbols outside the alphabet are a malformed-input error.
func parseAlphabet(digits, alpha string) (*big.Int, error) {
	base := big.NewInt(int64(len(alpha)))
	value := new(big.Int)

	for i := 0; i < len(digits); i++ {
		idx := strings.IndexByte(alpha, digits[i])
		if idx < 0 {
			return nil, ErrMalformedShare
		}
		value.Mul(value, base)
		value.Add(value, big.NewInt(int64(idx)))
	}

	return value, nil
}

// toAlphabet renders a non-negative integer by repeated division. Zero
// renders as the alphabet's first symbol.
func toAlphabet(value *big.Int, alpha string) string {
	if value.Sign() == 0 {
		return alpha[:1]
	}

	base := big.NewInt(int64(len(alpha)))
	remaining := new(big.Int).Set(value)
	remainder := new(big.Int)

	var digits []byte
	for remaining.Sign() > 0 {
		remaining.DivMod(remaining, base, remainder)
		digits = append(digits, alpha[remainder.Int64()])
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}

// encodeField renders a field element at the fixed width for byteWidth,
// left-padded with the alphabet's first symbol.
func encodeField(value *big.Int, byteWidth int) string {
	encoded := toAlphabet(value, alphabet)
	width := maxEncodedLength(byteWidth)
	if len(encoded) >= width {
		return encoded
	}
	return strings.Repeat(alphabet[:1], width-len(encoded)) + encoded
}

// decodeField parses one fixed-width alphabet field.
func decodeField(encoded string) (*big.Int, error) {
	return parseAlphabet(encoded, alphabet)
}
