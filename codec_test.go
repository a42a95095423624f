package fbc

import "testing"

func TestEncodeDecodeBlockRoundtrip(t *testing.T) {
	blocks := [][]byte{
		{0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA},
		{0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01},
		append(make([]byte, 15), 0x01, 0x02, 0x03, 0x04, 0x05),
	}
	for i := 0; i < 15; i++ {
		blocks[2][i] = 0x7F
	}

	for _, b := range blocks {
		encoded, ok, err := EncodeBlock(b)
		if err != nil {
			t.Fatalf("encode error: %v", err)
		}
		if !ok {
			t.Fatalf("expected compressible block for %x", b)
		}
		decoded, _, err := DecodeBlock(encoded, len(b))
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		for i := range b {
			if decoded[i] != b[i] {
				t.Fatalf("mismatch at %d: %x want %x", i, decoded[i], b[i])
			}
		}
	}
}

func TestEncodeBlockInvalidSize(t *testing.T) {
	if _, _, err := EncodeBlock(make([]byte, 1)); err != ErrBlockSize {
		t.Fatalf("err=%v want ErrBlockSize", err)
	}
	if _, _, err := EncodeBlock(make([]byte, 65)); err != ErrBlockSize {
		t.Fatalf("err=%v want ErrBlockSize", err)
	}
}

func TestEncodeBlockRandomIncompressible(t *testing.T) {
	input := make([]byte, 64)
	for i := range input {
		input[i] = byte(i*191 + 57)
	}
	_, ok, err := EncodeBlock(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Logf("block happened to compress; not an error but unusual for this spread")
	}
}

func TestEncodeBlockCodeDirectWorkedExample(t *testing.T) {
	input := []byte{0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01}
	out := make([]byte, 8)
	bits := EncodeBlockCode(input, out, 8)
	if bits != 31 {
		t.Fatalf("bits=%d want 31", bits)
	}

	decOut := make([]byte, 8)
	var consumed int
	r := DecodeBlockCode(out, decOut, 8, &consumed)
	if r != 8 {
		t.Fatalf("r=%d want 8", r)
	}
	for i := range input {
		if decOut[i] != input[i] {
			t.Fatalf("mismatch at %d", i)
		}
	}
}
