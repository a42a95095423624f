package fbc

// headerText, headerSingleValue and headerSevenBit are the three header
// byte values used when bits 1..4 are all zero (i.e. not a general
// fixed-bit block): bit 5 marks single-value mode, bit 6 marks 7-bit mode,
// and neither set marks text mode.
const (
	headerText        = 0x00
	headerSingleValue = 0x20
	headerSevenBit    = 0x40
)

// encodeTextMode implements §4.4: a control bit per input position selects
// between a 4-bit predefined-table index and a raw byte. Returns 0 if the
// resulting payload would not be shorter than the raw block.
func encodeTextMode(input, output []byte) int {
	n := len(input)
	controlBytes := (n + 7) / 8

	controlBits := make([]byte, n)
	var idxVals, rawVals []byte
	for i, b := range input {
		if predefinedIsText[b] {
			controlBits[i] = 0
			idxVals = append(idxVals, predefinedIndex[b])
		} else {
			controlBits[i] = 1
			rawVals = append(rawVals, b)
		}
	}

	idxBytes := (len(idxVals) + 1) / 2
	total := 1 + controlBytes + idxBytes + len(rawVals)
	if total >= n {
		return 0
	}

	output[0] = headerText
	bw := newBitWriter(output[1 : 1+controlBytes])
	for _, c := range controlBits {
		bw.writeBits(uint32(c), 1)
	}
	bw.flush()

	pos := 1 + controlBytes
	for i := 0; i < len(idxVals); i += 2 {
		lo := idxVals[i]
		var hi byte
		if i+1 < len(idxVals) {
			hi = idxVals[i+1]
		}
		output[pos] = lo | (hi << 4)
		pos++
	}
	copy(output[pos:pos+len(rawVals)], rawVals)
	pos += len(rawVals)

	return total * 8
}

// decodeTextMode inverts encodeTextMode.
func decodeTextMode(input, output []byte, n int) int {
	controlBytes := (n + 7) / 8
	br := newBitReader(input[1 : 1+controlBytes])
	controlBits := make([]byte, n)
	var cntIdx, cntRaw int
	for i := range controlBits {
		controlBits[i] = byte(br.readBits(1))
		if controlBits[i] == 1 {
			cntRaw++
		} else {
			cntIdx++
		}
	}

	pos := 1 + controlBytes
	idxBytesCount := (cntIdx + 1) / 2
	idxRegion := input[pos : pos+idxBytesCount]
	pos += idxBytesCount
	rawRegion := input[pos : pos+cntRaw]
	pos += cntRaw

	idxCursor, rawCursor := 0, 0
	for i := 0; i < n; i++ {
		if controlBits[i] == 1 {
			output[i] = rawRegion[rawCursor]
			rawCursor++
			continue
		}
		var nib byte
		if idxCursor%2 == 0 {
			nib = idxRegion[idxCursor/2] & 0xF
		} else {
			nib = idxRegion[idxCursor/2] >> 4
		}
		output[i] = textChars[nib]
		idxCursor++
	}
	return pos
}
