package arrayops_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hasbyte1/go-array-utils/arrayops"
)

// FuzzJoin cross-checks Join against strings.Join, which must agree exactly
// when the elements are already strings.
//
// Run with: go test -fuzz=FuzzJoin ./arrayops/
func FuzzJoin(f *testing.F) {
	f.Add(",", "a", "b", "c")
	f.Add("", "", "", "")
	f.Add(" | ", "left", "middle", "right")
	f.Add("--", "x", "", "y")

	f.Fuzz(func(t *testing.T, delim, a, b, c string) {
		parts := []string{a, b, c}
		// Prefixes exercise the fast paths for zero, one, and two elements.
		for n := 0; n <= len(parts); n++ {
			want := strings.Join(parts[:n], delim)
			if got := arrayops.Join(delim, parts[:n]...); got != want {
				t.Fatalf("Join(%q, %q) = %q; want %q", delim, parts[:n], got, want)
			}
		}
	})
}

// FuzzConcat cross-checks Concat against the builtin append.
func FuzzConcat(f *testing.F) {
	f.Add([]byte("abc"), []byte(""), []byte("xyz"))
	f.Add([]byte{}, []byte{0x00}, []byte{0xff, 0x01})
	f.Add([]byte("a much longer run to cross the bulk copy threshold"), []byte("b"), []byte(nil))

	f.Fuzz(func(t *testing.T, a, b, c []byte) {
		want := append(append(append([]byte{}, a...), b...), c...)
		got := arrayops.Concat(a, b, c)
		if !bytes.Equal(got, want) {
			t.Fatalf("Concat mismatch: got %x want %x", got, want)
		}
	})
}

// FuzzFill checks that every slot of a filled slice holds the fill value.
func FuzzFill(f *testing.F) {
	f.Add(0, byte(0))
	f.Add(1, byte(0xAA))
	f.Add(7, byte(0x01))
	f.Add(4096, byte(0xFF))

	f.Fuzz(func(t *testing.T, length int, value byte) {
		if length < 0 || length > 1<<20 {
			t.Skip()
		}
		got := arrayops.Fill(length, value)
		if len(got) != length {
			t.Fatalf("Fill length = %d; want %d", len(got), length)
		}
		for i, v := range got {
			if v != value {
				t.Fatalf("index %d: got %#x; want %#x", i, v, value)
			}
		}
	})
}
