// Package fullname converts between Reddit's compact base-36 "thing"
// identifiers and their underlying ordinals. Ordinals are unbounded, so
// all arithmetic runs on math/big integers rather than fixed-width types.
package fullname

import (
	"errors"
	"fmt"
	"math/big"
)

var base36 = big.NewInt(36)

// ErrInvalidCharacter matches any decode failure caused by a character
// outside [0-9a-zA-Z].
var ErrInvalidCharacter = errors.New("invalid base-36 character")

// InvalidCharacterError reports the first offending character of a
// malformed identifier. It matches ErrInvalidCharacter via errors.Is.
type InvalidCharacterError struct {
	Input string
	Char  rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("identifier %q: invalid base-36 character %q", e.Input, e.Char)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// Decode converts a base-36 identifier into its ordinal. Decoding is
// case-insensitive; "AbC" and "abc" yield the same ordinal. The empty
// string has no digits and is rejected.
func Decode(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty identifier: %w", ErrInvalidCharacter)
	}
	ordinal := new(big.Int)
	digit := new(big.Int)
	for _, r := range s {
		var d int64
		switch {
		case r >= '0' && r <= '9':
			d = int64(r - '0')
		case r >= 'a' && r <= 'z':
			d = int64(r-'a') + 10
		case r >= 'A' && r <= 'Z':
			d = int64(r-'A') + 10
		default:
			return nil, &InvalidCharacterError{Input: s, Char: r}
		}
		ordinal.Mul(ordinal, base36)
		ordinal.Add(ordinal, digit.SetInt64(d))
	}
	return ordinal, nil
}

// Encode renders a non-negative ordinal as a lowercase base-36
// identifier with no sign and no leading zeros. Zero encodes as "0".
// Callers only pass ordinals obtained from Decode or non-negative
// arithmetic derived from them.
func Encode(n *big.Int) string {
	if n == nil || n.Sign() == 0 {
		return "0"
	}
	return n.Text(36)
}
