package sss

import (
	"math/big"
	"strconv"
	"strings"
)

// share is the decoded form of one share string: the recovery metadata plus
// the y evaluation for every secret chunk. padBytes counts the synthetic zero
// bytes the final chunk was extended with, always less than the byte width.
type share struct {
	byteWidth int
	threshold int
	index     int
	values    []*big.Int
	padBytes  int
}

// encode renders the share string.
//
// Format: <1 hex digit byteWidth><threshold><index><body><pad symbols>, where
// threshold, index and each body field are alphabet-encoded and left-padded
// to maxEncodedLength(byteWidth), one body field per chunk, and one trailing
// pad symbol per missing byte of the final chunk.
func (s *share) encode() string {
	var b strings.Builder

	b.WriteString(strconv.FormatInt(int64(s.byteWidth), 16))
	b.WriteString(encodeField(big.NewInt(int64(s.threshold)), s.byteWidth))
	b.WriteString(encodeField(big.NewInt(int64(s.index)), s.byteWidth))

	for _, value := range s.values {
		b.WriteString(encodeField(value, s.byteWidth))
	}

	for i := 0; i < s.padBytes; i++ {
		b.WriteByte(padSymbol)
	}

	return b.String()
}

// decodeShare parses a share string, validating every length before slicing.
func decodeShare(raw string) (*share, error) {
	if len(raw) < 1 {
		return nil, ErrMalformedShare
	}

	widthDigit, err := strconv.ParseUint(raw[:1], 16, 8)
	if err != nil || widthDigit < 1 || widthDigit > maxByteWidth {
		return nil, ErrMalformedShare
	}
	byteWidth := int(widthDigit)

	fieldWidth := maxEncodedLength(byteWidth)
	rest := raw[1:]
	if len(rest) < 2*fieldWidth {
		return nil, ErrMalformedShare
	}

	threshold, err := decodeSmall(rest[:fieldWidth])
	if err != nil || threshold < 2 {
		return nil, ErrMalformedShare
	}

	index, err := decodeSmall(rest[fieldWidth : 2*fieldWidth])
	if err != nil || index < 1 {
		return nil, ErrMalformedShare
	}
	if big.NewInt(int64(index)).Cmp(fieldPrimes[byteWidth]) >= 0 {
		return nil, ErrMalformedShare
	}

	body := rest[2*fieldWidth:]

	// Pad symbols are only valid at the tail, fewer than byteWidth of them.
	padBytes := 0
	for len(body) > 0 && body[len(body)-1] == padSymbol {
		padBytes++
		body = body[:len(body)-1]
	}
	if padBytes >= byteWidth || strings.ContainsRune(body, padSymbol) {
		return nil, ErrMalformedShare
	}
	if len(body)%fieldWidth != 0 {
		return nil, ErrMalformedShare
	}
	if padBytes > 0 && len(body) == 0 {
		return nil, ErrMalformedShare
	}

	values := make([]*big.Int, 0, len(body)/fieldWidth)
	for i := 0; i < len(body); i += fieldWidth {
		value, err := decodeField(body[i : i+fieldWidth])
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return &share{
		byteWidth: byteWidth,
		threshold: threshold,
		index:     index,
		values:    values,
		padBytes:  padBytes,
	}, nil
}

// decodeSmall parses a fixed-width alphabet field that must fit in an int.
func decodeSmall(encoded string) (int, error) {
	value, err := decodeField(encoded)
	if err != nil {
		return 0, err
	}
	if !value.IsInt64() {
		return 0, ErrMalformedShare
	}
	v := value.Int64()
	if int64(int(v)) != v {
		return 0, ErrMalformedShare
	}
	return int(v), nil
}
