// Package fbc provides Fixed Bit Coding, a block-level lossless compressor
// for short byte runs (2 to 64 bytes per block) whose observed alphabet is
// a small subset of 0..255.
//
// # Overview
//
// FBC compresses one block at a time. For each block it picks one of a
// handful of modes from threshold tests on the block's statistics (distinct
// values, per-value counts, text characters, high bits); it does not compare
// the encoded sizes of the modes. The modes are: a single-unique fast path
// when every byte is identical, a general fixed-bit table that lists the
// distinct byte values and packs per-position indices at a fixed width,
// a predefined-text mode tuned for English prose, a single-value mode for
// blocks dominated by one byte, and a 7-bit mode for ASCII-clean data that
// has no small alphabet to exploit. A block that fits none of these is left
// uncompressed; the caller is told so and must keep the original bytes.
//
// # When to Use FBC
//
// FBC excels at compressing:
//   - Fixed-width records with a small per-field alphabet
//   - Columnar or row-oriented data with local repetition
//   - English text in small chunks where a full entropy coder is overkill
//
// # When NOT to Use FBC
//
// FBC is not suitable for:
//   - Blocks outside the 2..64 byte range
//   - High-entropy or encrypted data (incompressible by design)
//   - Workloads needing cross-block dictionaries or adaptive models
//
// # Tradeoffs vs Other Compression
//
// Compared to a general-purpose entropy coder:
//   - No training phase, no shared dictionary, no cross-block state
//   - Linear time per block, with a few small per-block scratch allocations
//   - Lower compression ratio on data that doesn't fit one of its modes
//
// # Basic Usage
//
//	block := []byte{0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01}
//	encoded, ok, err := fbc.EncodeBlock(block)
//	if err != nil {
//	    // malformed request: block size out of [2,64]
//	}
//	if !ok {
//	    // block is not compressible; caller keeps the original bytes
//	}
//	decoded, _, err := fbc.DecodeBlock(encoded, len(block))
//
// # Performance Characteristics
//
// Encoding and decoding are O(N) per block. They are not allocation-free:
// the statistics scan, the bit readers and writers, and several encoders
// allocate small per-block scratch values on the heap, and EncodeBlock and
// DecodeBlock also allocate their output buffers. The only process-wide
// state is a handful of read-only lookup tables initialized once at package
// load.
package fbc
