package vault

import "testing"

func TestResolve_KnownVault(t *testing.T) {
	r := NewRegistry(map[string]string{
		"0x7FC862A47BBCDe3812CA772Ae851d0A9D1619eDa": "lov-sUSDe-a",
	})
	if got := r.Resolve("0x7FC862A47BBCDe3812CA772Ae851d0A9D1619eDa"); got != "lov-sUSDe-a" {
		t.Errorf("expected lov-sUSDe-a, got %s", got)
	}
}

func TestResolve_UnknownVaultFallsBack(t *testing.T) {
	r := NewRegistry(nil)
	got := r.Resolve("0xDEADbeef00000000000000000000000000001234")
	want := "0xDEAD...1234"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestResolve_CaseSensitive(t *testing.T) {
	r := NewRegistry(map[string]string{"0xABCdef1234567890": "named"})
	// Different casing is a different key; it falls back to shortening.
	if got := r.Resolve("0xabcdef1234567890"); got != "0xabcd...7890" {
		t.Errorf("expected fallback for case mismatch, got %s", got)
	}
}

func TestShorten(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0x1234567890abcdef", "0x1234...cdef"},
		{"short", "short"},
		{"exactly10c", "exactly10c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Shorten(tt.in); got != tt.want {
			t.Errorf("Shorten(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
