package fbc

// encodeShortBlock implements the hand-tuned short-block layouts of §4.2
// for N in {2,3,4,5}: single-unique first, then a two-unique fallback that
// operates at nibble granularity for N in {2,3} and byte granularity for N
// in {4,5}. Returns 0 if the block fits none of these layouts.
func encodeShortBlock(input, output []byte) int {
	n := len(input)
	allSame := true
	for _, b := range input[1:] {
		if b != input[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return encodeSingleUnique(input[0], output)
	}

	switch n {
	case 2, 3:
		return encodeTwoUniqueNibble(input, output)
	case 4, 5:
		return encodeTwoUniqueByte(input, output)
	default:
		return 0
	}
}

// decodeShortBlock inverts encodeShortBlock and returns the number of input
// bytes consumed.
func decodeShortBlock(input, output []byte, n int) int {
	if input[0]&1 == 1 {
		v, used := decodeSingleUnique(input)
		for i := 0; i < n; i++ {
			output[i] = v
		}
		return used
	}
	switch n {
	case 2, 3:
		return decodeTwoUniqueNibble(input, output, n)
	case 4, 5:
		return decodeTwoUniqueByte(input, output, n)
	default:
		return 0
	}
}

// encodeTwoUniqueNibble handles N in {2,3} by decomposing the block into
// 2N nibbles and requiring at most two distinct nibble values across the
// whole block. Layout: 1 flag bit (0), 4-bit first nibble, a mask bit per
// remaining nibble position (0 = same as first, 1 = the other nibble),
// then the other nibble's 4 bits.
func encodeTwoUniqueNibble(input, output []byte) int {
	n := len(input)
	nibbles := make([]byte, 2*n)
	for i, b := range input {
		nibbles[2*i] = b >> 4
		nibbles[2*i+1] = b & 0xF
	}

	first := nibbles[0]
	const unset = 0xFF
	other := byte(unset)
	mask := make([]byte, len(nibbles)-1)
	for i := 1; i < len(nibbles); i++ {
		v := nibbles[i]
		if v == first {
			continue
		}
		if other == unset {
			other = v
		} else if v != other {
			return 0
		}
		mask[i-1] = 1
	}
	if other == unset {
		return 0
	}

	bw := newBitWriter(output)
	bw.writeBits(0, 1)
	bw.writeBits(uint32(first), 4)
	for _, m := range mask {
		bw.writeBits(uint32(m), 1)
	}
	bw.writeBits(uint32(other), 4)
	bw.flush()

	return 1 + 4 + len(mask) + 4
}

// decodeTwoUniqueNibble inverts encodeTwoUniqueNibble.
func decodeTwoUniqueNibble(input, output []byte, n int) int {
	br := newBitReader(input)
	br.readBits(1)
	first := byte(br.readBits(4))

	nibbles := make([]byte, 2*n)
	nibbles[0] = first
	isOther := make([]bool, len(nibbles))
	for i := 1; i < len(nibbles); i++ {
		isOther[i] = br.readBits(1) != 0
	}
	other := byte(br.readBits(4))
	for i := 1; i < len(nibbles); i++ {
		if isOther[i] {
			nibbles[i] = other
		} else {
			nibbles[i] = first
		}
	}

	for i := 0; i < n; i++ {
		output[i] = (nibbles[2*i] << 4) | nibbles[2*i+1]
	}
	return br.bytesConsumed()
}

// encodeTwoUniqueByte handles N in {4,5} by requiring at most two distinct
// byte values across the whole block. Layout: 1 flag bit (0), an (N-1)-bit
// control mask (one bit per position after the first), byte-aligned, then
// the two raw 8-bit unique values.
func encodeTwoUniqueByte(input, output []byte) int {
	n := len(input)
	first := input[0]
	var other byte
	haveOther := false
	mask := make([]byte, n-1)
	for i := 1; i < n; i++ {
		b := input[i]
		if b == first {
			continue
		}
		if !haveOther {
			other = b
			haveOther = true
		} else if b != other {
			return 0
		}
		mask[i-1] = 1
	}
	if !haveOther {
		return 0
	}

	bw := newBitWriter(output)
	bw.writeBits(0, 1)
	for _, m := range mask {
		bw.writeBits(uint32(m), 1)
	}
	bw.flush()
	pos := bw.bytesWritten()
	output[pos] = first
	output[pos+1] = other

	return 1 + (n - 1) + 8 + 8
}

// decodeTwoUniqueByte inverts encodeTwoUniqueByte.
func decodeTwoUniqueByte(input, output []byte, n int) int {
	br := newBitReader(input)
	br.readBits(1)
	mask := make([]byte, n-1)
	for i := range mask {
		mask[i] = byte(br.readBits(1))
	}
	pos := br.bytesConsumed()
	first := input[pos]
	other := input[pos+1]

	output[0] = first
	for i, m := range mask {
		if m == 0 {
			output[i+1] = first
		} else {
			output[i+1] = other
		}
	}
	return pos + 2
}
