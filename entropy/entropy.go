// Package entropy estimates how random a byte sequence looks. The CLI uses
// it to warn before splitting secrets that an attacker could guess outright.
package entropy

import "math"

// Shannon calculates the Shannon entropy of the input in bits per byte:
// H(X) = -Σ P(x) · log2(P(x)). The maximum for byte data is 8 bits.
func Shannon(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	freq := make(map[byte]int, 256)
	for _, b := range data {
		freq[b]++
	}

	var entropy float64
	length := float64(len(data))

	for _, count := range freq {
		probability := float64(count) / length
		entropy -= probability * math.Log2(probability)
	}

	return entropy
}

// Normalized scales the Shannon entropy by the maximum achievable for the
// number of distinct symbols present, yielding 0 (constant input) to 1
// (uniform distribution).
func Normalized(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	unique := make(map[byte]struct{}, 256)
	for _, b := range data {
		unique[b] = struct{}{}
	}

	maxEntropy := math.Log2(float64(len(unique)))
	if maxEntropy == 0 {
		return 0
	}

	return Shannon(data) / maxEntropy
}
