package urlnorm

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"https://example.com/a", "https://example.com/a"},
		{"http://example.com", "http://example.com"},
		{"//cdn.example.com/x.js", "https://cdn.example.com/x.js"},
		{"example.com/page", "https://example.com/page"},
		{"  example.com  ", "https://example.com"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseAbsolute_Valid(t *testing.T) {
	for _, in := range []string{
		"https://example.com/product",
		"example.com/product",
		"//example.com/product",
		"http://127.0.0.1:8080/x",
		"localhost:9999/x",
	} {
		u, err := ParseAbsolute(in)
		if err != nil {
			t.Fatalf("ParseAbsolute(%q): unexpected error: %v", in, err)
		}
		if u.Host == "" {
			t.Fatalf("ParseAbsolute(%q): empty host", in)
		}
	}
}

func TestParseAbsolute_Invalid(t *testing.T) {
	for _, in := range []string{
		"not-a-url",
		"ftp://example.com/x",
		"https://",
		"http://%zz",
	} {
		if _, err := ParseAbsolute(in); err == nil {
			t.Fatalf("ParseAbsolute(%q): expected error", in)
		}
	}
}
