package fullname

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestDecode_KnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"a", 10},
		{"z", 35},
		{"10", 36},
		{"zz", 1295},
		{"1abc10a", 2800481050},
	}
	for _, c := range cases {
		got, err := Decode(c.in)
		if err != nil {
			t.Fatalf("Decode(%q): unexpected error: %v", c.in, err)
		}
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Fatalf("Decode(%q) = %s, want %d", c.in, got, c.want)
		}
	}
}

func TestDecode_CaseInsensitive(t *testing.T) {
	lower, err := Decode("abc123xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upper, err := Decode("ABC123XYZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lower.Cmp(upper) != 0 {
		t.Fatalf("case-insensitive decode mismatch: %s vs %s", lower, upper)
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	for _, in := range []string{"abc-1", "t3_abc", "a b", "ab!", "-1", "1.5"} {
		_, err := Decode(in)
		if err == nil {
			t.Fatalf("Decode(%q): expected error", in)
		}
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("Decode(%q): error does not match ErrInvalidCharacter: %v", in, err)
		}
		var ice *InvalidCharacterError
		if !errors.As(err, &ice) {
			t.Fatalf("Decode(%q): expected *InvalidCharacterError, got %v", in, err)
		}
		if !strings.ContainsRune(in, ice.Char) {
			t.Fatalf("Decode(%q): reported character %q not in input", in, ice.Char)
		}
	}
}

func TestDecode_EmptyRejected(t *testing.T) {
	if _, err := Decode(""); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter for empty input, got %v", err)
	}
}

func TestEncode_KnownValues(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{10, "a"},
		{35, "z"},
		{36, "10"},
		{1295, "zz"},
	}
	for _, c := range cases {
		if got := Encode(big.NewInt(c.in)); got != c.want {
			t.Fatalf("Encode(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEncode_NilIsZero(t *testing.T) {
	if got := Encode(nil); got != "0" {
		t.Fatalf("Encode(nil) = %q, want \"0\"", got)
	}
}

func TestRoundTrip_OrdinalFirst(t *testing.T) {
	// Includes values well past 64-bit range.
	huge := new(big.Int)
	huge.SetString("123456789012345678901234567890123456789", 10)
	for _, n := range []*big.Int{
		big.NewInt(0), big.NewInt(1), big.NewInt(36), big.NewInt(1 << 40), huge,
	} {
		back, err := Decode(Encode(n))
		if err != nil {
			t.Fatalf("round trip %s: %v", n, err)
		}
		if back.Cmp(n) != 0 {
			t.Fatalf("decode(encode(%s)) = %s", n, back)
		}
	}
}

func TestRoundTrip_TextFirst(t *testing.T) {
	for _, s := range []string{"0", "1", "z", "10", "1abc10a", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", "Kj9XyZ01"} {
		n, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q): %v", s, err)
		}
		if got, want := Encode(n), strings.ToLower(s); got != want {
			t.Fatalf("encode(decode(%q)) = %q, want %q", s, got, want)
		}
	}
}
