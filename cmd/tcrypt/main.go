// Command tcrypt encrypts or decrypts a file with three-key Triple DES.
//
//	tcrypt [-d] [-strict] [-v] KEY_FILE INPUT_FILE OUTPUT_FILE
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tdes "github.com/moofMonkey/go-tdes"
	"github.com/moofMonkey/go-tdes/internal/fileio"
)

const usage = "usage: tcrypt [-d] [-strict] [-v] KEY_FILE INPUT_FILE OUTPUT_FILE"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("tcrypt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	decrypt := fs.Bool("d", false, "decrypt INPUT_FILE instead of encrypting it")
	strict := fs.Bool("strict", false, "verify every padding byte when decrypting")
	verbose := fs.Bool("v", false, "log debug details")
	if err := fs.Parse(args); err != nil || fs.NArg() != 3 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	keyPath, inPath, outPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	key, err := fileio.ReadFile(keyPath)
	if err != nil {
		log.Error("read key", "err", err)
		return 1
	}
	if len(key) != tdes.TripleKeySize {
		log.Error("invalid key length", "path", keyPath, "len", len(key))
		return 1
	}
	input, err := fileio.ReadFile(inPath)
	if err != nil {
		log.Error("read input", "err", err)
		return 1
	}

	var output []byte
	switch {
	case !*decrypt:
		output, err = tdes.Encrypt(input, key)
	case *strict:
		output, err = tdes.DecryptStrict(input, key)
	default:
		output, err = tdes.Decrypt(input, key)
	}
	if err != nil {
		log.Error("cipher", "decrypt", *decrypt, "err", err)
		return 1
	}
	log.Debug("processed", "decrypt", *decrypt, "in", len(input), "out", len(output))

	if err = fileio.WriteFile(outPath, output); err != nil {
		log.Error("write output", "err", err)
		return 1
	}
	return 0
}
