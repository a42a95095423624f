package fbc

import "testing"

func TestShortBlockSingleUnique(t *testing.T) {
	for n := 2; n <= 5; n++ {
		input := make([]byte, n)
		for i := range input {
			input[i] = 0x20
		}
		out := make([]byte, n)
		bits := encodeShortBlock(input, out)
		if bits == 0 {
			t.Fatalf("n=%d: expected success", n)
		}
		byteLen := (bits + 7) / 8
		got := make([]byte, n)
		consumed := decodeShortBlock(out[:byteLen], got, n)
		if consumed != byteLen {
			t.Fatalf("n=%d: consumed=%d want %d", n, consumed, byteLen)
		}
		for i := range got {
			if got[i] != 0x20 {
				t.Fatalf("n=%d: roundtrip mismatch at %d: %x", n, i, got[i])
			}
		}
	}
}

func TestShortBlockTwoUniqueNibble(t *testing.T) {
	cases := map[int][]byte{
		2: {0x11, 0x12},
		3: {0x11, 0x12, 0x11},
	}
	for n, input := range cases {
		out := make([]byte, n+2)
		bits := encodeShortBlock(input, out)
		if bits == 0 {
			t.Fatalf("n=%d: expected success, got 0", n)
		}
		byteLen := (bits + 7) / 8
		got := make([]byte, n)
		decodeShortBlock(out[:byteLen], got, n)
		for i := range got {
			if got[i] != input[i] {
				t.Fatalf("n=%d: roundtrip mismatch at %d: %x want %x", n, i, got[i], input[i])
			}
		}
	}
}

func TestShortBlockTwoUniqueByte(t *testing.T) {
	cases := map[int][]byte{
		4: {0x01, 0x02, 0x01, 0x02},
		5: {0x01, 0x02, 0x01, 0x01, 0x02},
	}
	for n, input := range cases {
		out := make([]byte, n+3)
		bits := encodeShortBlock(input, out)
		if bits == 0 {
			t.Fatalf("n=%d: expected success, got 0", n)
		}
		byteLen := (bits + 7) / 8
		got := make([]byte, n)
		decodeShortBlock(out[:byteLen], got, n)
		for i := range got {
			if got[i] != input[i] {
				t.Fatalf("n=%d: roundtrip mismatch at %d: %x want %x", n, i, got[i], input[i])
			}
		}
	}
}

func TestShortBlockFourValuesFails(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04}
	out := make([]byte, 8)
	if bits := encodeShortBlock(input, out); bits != 0 {
		t.Fatalf("expected 0 for a 4-distinct-byte N=4 block, got %d", bits)
	}
}
