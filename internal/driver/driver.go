// Package driver implements the file-based test harness described
// informally in the core's external-interfaces contract: it is a thin
// shell around the block codec, not a source of compression policy.
package driver

import (
	"fmt"
	"log"
	"os"

	"github.com/blockcodec/fbc"
)

// CompressFile splits path into blockSize-byte blocks, compresses each with
// fbc.EncodeBlock, and writes the compressed stream to path+".fbc" plus the
// compressed-or-not bitmap sidecar to path+".cq". The final short block (if
// any) is always stored uncompressed.
func CompressFile(path string, blockSize int) (fbcPath, cqPath string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("driver: read %s: %w", path, err)
	}

	fbcPath = path + ".fbc"
	cqPath = path + ".cq"

	fbcFile, err := os.Create(fbcPath)
	if err != nil {
		return "", "", fmt.Errorf("driver: create %s: %w", fbcPath, err)
	}
	defer fbcFile.Close()

	nBlocks := (len(data) + blockSize - 1) / blockSize
	flags := make([]bool, nBlocks)

	var compressedCount, storedCount int
	for i := 0; i < nBlocks; i++ {
		start := i * blockSize
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		block := data[start:end]

		if len(block) < blockSize {
			// Trailing partial block: always stored uncompressed.
			if _, werr := fbcFile.Write(block); werr != nil {
				return "", "", fmt.Errorf("driver: write trailing block: %w", werr)
			}
			storedCount++
			continue
		}

		encoded, ok, eerr := fbc.EncodeBlock(block)
		if eerr != nil {
			return "", "", fmt.Errorf("driver: encode block %d: %w", i, eerr)
		}
		if !ok {
			if _, werr := fbcFile.Write(block); werr != nil {
				return "", "", fmt.Errorf("driver: write stored block %d: %w", i, werr)
			}
			storedCount++
			continue
		}
		if _, werr := fbcFile.Write(encoded); werr != nil {
			return "", "", fmt.Errorf("driver: write encoded block %d: %w", i, werr)
		}
		flags[i] = true
		compressedCount++
	}

	if err := writeBitmap(cqPath, blockSize, flags); err != nil {
		return "", "", err
	}

	log.Printf("driver: %s: %d blocks, %d compressed, %d stored", path, nBlocks, compressedCount, storedCount)
	return fbcPath, cqPath, nil
}

// DecompressFile inverts CompressFile, reading fbcPath and its cqPath
// sidecar and writing the reconstructed file to outPath.
func DecompressFile(fbcPath, cqPath, outPath string) error {
	compressed, err := os.ReadFile(fbcPath)
	if err != nil {
		return fmt.Errorf("driver: read %s: %w", fbcPath, err)
	}
	bitmapRaw, err := os.ReadFile(cqPath)
	if err != nil {
		return fmt.Errorf("driver: read %s: %w", cqPath, err)
	}
	if len(bitmapRaw) < 1 {
		return fmt.Errorf("driver: %s is empty", cqPath)
	}
	blockSize := int(bitmapRaw[0])
	flags := readBitmap(bitmapRaw[1:])

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("driver: create %s: %w", outPath, err)
	}
	defer out.Close()

	pos := 0
	var blockIdx int
	for pos < len(compressed) {
		compressedHere := blockIdx < len(flags) && flags[blockIdx]
		if compressedHere {
			decoded, consumed, derr := fbc.DecodeBlock(compressed[pos:], blockSize)
			if derr != nil {
				return fmt.Errorf("driver: decode block %d: %w", blockIdx, derr)
			}
			if _, werr := out.Write(decoded); werr != nil {
				return fmt.Errorf("driver: write block %d: %w", blockIdx, werr)
			}
			pos += consumed
		} else {
			end := pos + blockSize
			if end > len(compressed) {
				end = len(compressed)
			}
			if _, werr := out.Write(compressed[pos:end]); werr != nil {
				return fmt.Errorf("driver: write stored block %d: %w", blockIdx, werr)
			}
			pos = end
		}
		blockIdx++
	}
	return nil
}

// writeBitmap writes the header byte (block size) followed by the
// compressed-or-not flags packed 64 bits per 8-byte little-endian word,
// one bit per block, MSB-first within each word. A final partial word's
// used bits occupy the high end (bit 63 downward); the unused low bits
// stay zero.
func writeBitmap(path string, blockSize int, flags []bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("driver: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{byte(blockSize)}); err != nil {
		return fmt.Errorf("driver: write header byte: %w", err)
	}

	for i := 0; i < len(flags); i += 64 {
		end := i + 64
		if end > len(flags) {
			end = len(flags)
		}
		chunk := flags[i:end]

		var word uint64
		for j, set := range chunk {
			if set {
				word |= 1 << uint(63-j)
			}
		}

		var buf [8]byte
		for b := 0; b < 8; b++ {
			buf[b] = byte(word >> uint(8*b))
		}
		if _, err := f.Write(buf[:]); err != nil {
			return fmt.Errorf("driver: write bitmap word: %w", err)
		}
	}
	return nil
}

// readBitmap inverts the packing in writeBitmap, returning one bool per
// block encoded in the remaining bytes after the header byte.
func readBitmap(words []byte) []bool {
	var flags []bool
	for i := 0; i+8 <= len(words); i += 8 {
		var word uint64
		for b := 0; b < 8; b++ {
			word |= uint64(words[i+b]) << uint(8*b)
		}
		for j := 0; j < 64; j++ {
			flags = append(flags, word&(1<<uint(63-j)) != 0)
		}
	}
	return flags
}
