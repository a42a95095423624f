// Command fbc is an illustrative driver around the block codec: it splits
// a file into fixed-size blocks, compresses what it can, and writes the
// compressed stream plus its ".cq" bitmap sidecar. It is not part of the
// normative interface; the command-line surface exists for benchmarking
// and manual inspection, not for production file compression.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/blockcodec/fbc/internal/driver"
)

func main() {
	var blockSize = pflag.IntP("block-size", "b", 64, "Block size in bytes, 2..64.")
	var iterations = pflag.IntP("iterations", "i", 1, "Number of times to repeat compression, for timing.")
	var decompress = pflag.BoolP("decompress", "d", false, "Decompress instead of compress; input is treated as a .fbc path.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Fixed Bit Coding file driver.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nUsage: fbc [options] <input-file>\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help || pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	input := pflag.Arg(0)

	if *decompress {
		cqPath := input[:len(input)-len(".fbc")] + ".cq"
		outPath := input + ".out"
		if err := driver.DecompressFile(input, cqPath, outPath); err != nil {
			log.Fatalf("fbc: decompress failed: %v", err)
		}
		fmt.Println(outPath)
		return
	}

	if *blockSize < 2 || *blockSize > 64 {
		log.Fatalf("fbc: block size %d out of [2,64]", *blockSize)
	}

	start := time.Now()
	var fbcPath, cqPath string
	var err error
	for i := 0; i < *iterations; i++ {
		fbcPath, cqPath, err = driver.CompressFile(input, *blockSize)
		if err != nil {
			log.Fatalf("fbc: compress failed: %v", err)
		}
	}
	elapsed := time.Since(start)

	fmt.Println(fbcPath)
	fmt.Println(cqPath)
	if *iterations > 1 {
		fmt.Printf("%d iterations in %s (%s/iteration)\n", *iterations, elapsed, elapsed/time.Duration(*iterations))
	}
}
