// Command scstemmers stems a UTF-8 text file line by line and writes
// the stemmed text to an output file.
//
// Usage:
//
//	scstemmers StemmerID InputFile OutputFile
//
// StemmerID selects the algorithm:
//
//	1 - Kešelj–Šipka greedy (Serbian)
//	2 - Kešelj–Šipka optimal (Serbian)
//	3 - Milošević (Serbian)
//	4 - Ljubešić–Pandžić (Croatian)
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	scstemmers "github.com/vukbatanovic/SCStemmers"
)

// maxLineBytes bounds the scanner buffer so a single very long line
// does not abort the run.
const maxLineBytes = 1 << 20

func main() {
	if len(os.Args) != 4 {
		usage()
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		fmt.Fprintln(os.Stderr, "scstemmers:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: scstemmers StemmerID InputFile OutputFile

StemmerID selects the algorithm:
  1 - Kešelj–Šipka greedy (Serbian)
  2 - Kešelj–Šipka optimal (Serbian)
  3 - Milošević (Serbian)
  4 - Ljubešić–Pandžić (Croatian)`)
}

func run(idArg, inPath, outPath string) error {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return fmt.Errorf("invalid stemmer ID %q: %w", idArg, err)
	}
	stemmer, err := scstemmers.New(scstemmers.Algorithm(id))
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := stemFile(stemmer, in, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func stemFile(stemmer *scstemmers.Stemmer, in *os.File, out *os.File) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	w := bufio.NewWriter(out)
	for sc.Scan() {
		if _, err := w.WriteString(stemmer.StemLine(sc.Text())); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
