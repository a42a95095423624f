package fbc

import "errors"

// Error sentinels for the idiomatic wrappers. EncodeBlockCode and
// DecodeBlockCode instead return the signed-integer codes of §7, preserved
// for callers that need the raw contract; these sentinels classify those
// codes for Go-facing callers.
var (
	ErrBlockSize      = errors.New("fbc: block size out of [2,64]")
	ErrShortBuffer    = errors.New("fbc: output buffer shorter than block size")
	ErrBadHeader      = errors.New("fbc: inconsistent header during decode")
	ErrUniqueOverflow = errors.New("fbc: unique table exceeds 16 entries")
)

// Negative result codes returned by EncodeBlockCode/DecodeBlockCode, per §7:
// fatals are negative, subdivided by cause so callers that care can
// distinguish them; callers that don't may treat any negative as failure.
const (
	codeErrBlockSize  = -1
	codeErrShortBuffer = -2
	codeErrBadHeader   = -3
)

// EncodeBlockCode is the core encode entry point. It returns the number of
// bits written to output on success (r > 0), 0 if the block is not
// compressible by any available mode, or a negative error code.
func EncodeBlockCode(input, output []byte, n int) int {
	if n < MinBlockBytes || n > MaxBlockBytes {
		return codeErrBlockSize
	}
	if len(input) < n || len(output) < n {
		return codeErrShortBuffer
	}

	block := input[:n]
	if n <= 5 {
		return encodeShortBlock(block, output)
	}

	stats, md := scanBlock(block)
	switch md {
	case modeFixedBitGeneral:
		return encodeFixedBitGeneral(block, output, stats)
	case modeTextMode:
		return encodeTextMode(block, output)
	case modeSingleValueMode:
		return encodeSingleValueMode(block, output, byte(stats.singleValue))
	case modeSevenBitMode:
		return encodeSevenBit(block, output)
	default:
		return 0
	}
}

// DecodeBlockCode is the core decode entry point. It returns N on success,
// storing the number of input bytes consumed in *bytesConsumed, or a
// negative error code.
func DecodeBlockCode(input, output []byte, n int, bytesConsumed *int) int {
	if n < MinBlockBytes || n > MaxBlockBytes {
		return codeErrBlockSize
	}
	if len(output) < n {
		return codeErrShortBuffer
	}

	out := output[:n]
	if n <= 5 {
		*bytesConsumed = decodeShortBlock(input, out, n)
		return n
	}

	if consumed, ok := decodeFixedBitGeneral(input, out, n); ok {
		*bytesConsumed = consumed
		return n
	}

	header := input[0]
	var consumed int
	switch {
	case header&0x20 != 0:
		consumed = decodeSingleValueMode(input, out, n)
	case header&0x40 != 0:
		consumed = decodeSevenBit(input, out, n)
	default:
		consumed = decodeTextMode(input, out, n)
	}
	*bytesConsumed = consumed
	return n
}

func mapErrorCode(code int) error {
	switch code {
	case codeErrBlockSize:
		return ErrBlockSize
	case codeErrShortBuffer:
		return ErrShortBuffer
	default:
		return ErrBadHeader
	}
}

// EncodeBlock is the idiomatic wrapper around EncodeBlockCode. ok is false
// when the block is not compressible by any mode (not an error); err is
// non-nil only for a malformed request (block size out of range).
func EncodeBlock(input []byte) (output []byte, ok bool, err error) {
	n := len(input)
	if n < MinBlockBytes || n > MaxBlockBytes {
		return nil, false, ErrBlockSize
	}

	buf := make([]byte, n)
	bits := EncodeBlockCode(input, buf, n)
	if bits < 0 {
		return nil, false, mapErrorCode(bits)
	}
	if bits == 0 {
		return nil, false, nil
	}
	byteLen := (bits + 7) / 8
	return buf[:byteLen], true, nil
}

// DecodeBlock is the idiomatic wrapper around DecodeBlockCode.
func DecodeBlock(encoded []byte, n int) (output []byte, consumed int, err error) {
	if n < MinBlockBytes || n > MaxBlockBytes {
		return nil, 0, ErrBlockSize
	}

	buf := make([]byte, n)
	r := DecodeBlockCode(encoded, buf, n, &consumed)
	if r < 0 {
		return nil, 0, mapErrorCode(r)
	}
	return buf, consumed, nil
}
