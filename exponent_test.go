package modexp

import (
	"bytes"
	"testing"

	"github.com/cronokirby/safenum"
)

func TestModExp(t *testing.T) {
	tests := []struct {
		name string
		base string
		exp  string
		mod  string
		want string
	}{
		{"small", "03", "05", "07", "05"},
		{"two pow ten", "02", "0a", "03e8", "18"}, // 2^10 % 1000 = 24
		{"zero pow zero", "", "", "05", "01"},
		{"zero base", "00", "0a", "07", ""},
		{"zero modulus", "05", "03", "00", ""},
		{"modulus one", "05", "03", "01", ""},
		{"even modulus", "05", "03", "08", "05"},
		{"base one", "01", "ffffffffffffffff", "09", "01"},
		{"base one modulus two", "01", "ff", "02", "01"},
		{"large values", "075bcd15", "010001", "3b800001", "308dde32"}, // 123456789^65537 % 998244353
		{"fermat inverse", "03", secpExpHex, secpModHex, "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := modExp(hexMust(tt.base), hexMust(tt.exp), hexMust(tt.mod))
			if !bytes.Equal(got, hexMust(tt.want)) {
				t.Errorf("modExp = %x, want %s", got, tt.want)
			}
		})
	}
}

func TestModExpMinimalEncoding(t *testing.T) {
	// The backend returns the minimal encoding; padding is the
	// formatter's job.
	got := modExp([]byte{0x03}, hexMust(secpExpHex), hexMust(secpModHex))
	if len(got) != 1 || got[0] != 0x01 {
		t.Errorf("modExp = %x, want the single byte 01", got)
	}
}

// TestModExpMatchesSafenum checks the backend against an independent
// constant-time implementation. safenum exponentiates with Montgomery
// arithmetic, so the oracle only covers odd moduli; even and degenerate
// moduli are pinned by the table vectors above.
func TestModExpMatchesSafenum(t *testing.T) {
	tests := []struct {
		name string
		base string
		exp  string
		mod  string
	}{
		{"small", "03", "05", "07"},
		{"odd thousand", "02", "0a", "03e9"},
		{"u16 odd modulus", "1491", "15", "3875"},
		{"curve25519 prime", "deadbeef", "1337", "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed"},
		{"word boundary", "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffb", "0100000001", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"},
		{"twelve byte modulus", "eeddccbbaa99887766554433", "29", "ffffffffffffffffffffffff"},
		{"leading zero modulus", "02", "05", "000d"}, // 32 % 13 = 6, padded to two bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := hexMust(tt.base)
			exp := hexMust(tt.exp)
			mod := hexMust(tt.mod)

			got, err := format(modExp(base, exp, mod), uint64(len(mod)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			m := safenum.ModulusFromBytes(mod)
			x := new(safenum.Nat).SetBytes(base)
			y := new(safenum.Nat).SetBytes(exp)

			// safenum fills buffers whole 64-bit limbs at a time and
			// panics when the destination is shorter, so take Bytes and
			// pad to the modulus length by hand.
			raw := new(safenum.Nat).Exp(x, y, m).Bytes()
			if len(raw) > len(mod) {
				// The result is reduced, so bytes past the modulus
				// length can only be zero.
				raw = raw[len(raw)-len(mod):]
			}
			want := make([]byte, len(mod))
			copy(want[len(want)-len(raw):], raw)

			if !bytes.Equal(got, want) {
				t.Errorf("modExp = %x, safenum says %x", got, want)
			}
		})
	}
}
