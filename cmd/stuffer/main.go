package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dchest/safefile"

	"sigsum.org/stuffer-go/internal/version"
	"sigsum.org/stuffer-go/pkg/hash"
	"sigsum.org/stuffer-go/pkg/log"
)

func main() {
	const usage = `
Encode and decode data using the stuffer buffer library.  Input is
read on stdin and output is written on stdout, unless -o is given.

Usage: stuffer [--help|help] [--version|version]
   or: stuffer base64 [options]
   or: stuffer hex [options]
   or: stuffer digest [options]
   or: stuffer sni [options]

Options:
      --help     Show usage message and exit
  -v, --version  Show program version and exit
`
	log.SetDate(false)
	if len(os.Args) < 2 {
		log.Fatal("%s", usage[1:])
	}

	switch os.Args[1] {
	default:
		log.Fatal("%s", usage[1:])
	case "help", "--help":
		fmt.Print(usage[1:])
		os.Exit(0)
	case "version", "--version", "-v":
		version.DisplayVersion(os.Stdout, "stuffer")
		os.Exit(0)
	case "base64":
		var settings CodecSettings
		settings.parse(os.Args, "base64")
		in := readInput()
		convert := encodeBase64
		if settings.decode {
			convert = decodeBase64
		}
		out, err := convert(in)
		if err != nil {
			log.Fatal("%v", err)
		}
		writeOutput(settings.outputFile, out)
	case "hex":
		var settings CodecSettings
		settings.parse(os.Args, "hex")
		in := readInput()
		convert := encodeHex
		if settings.decode {
			convert = decodeHex
		}
		out, err := convert(in)
		if err != nil {
			log.Fatal("%v", err)
		}
		writeOutput(settings.outputFile, out)
	case "digest":
		var settings DigestSettings
		settings.parse(os.Args)
		st := hash.New()
		if settings.fips {
			st = hash.NewFIPS()
		}
		if err := st.Init(settings.alg); err != nil {
			log.Fatal("%v", err)
		}
		if err := digestFd(int(os.Stdin.Fd()), st); err != nil {
			log.Fatal("reading input failed: %v", err)
		}
		out, err := formatDigest(st)
		if err != nil {
			log.Fatal("%v", err)
		}
		writeOutput(settings.outputFile, out)
	case "sni":
		var settings SniSettings
		settings.parse(os.Args)
		out, err := encodeServerName(settings.host)
		if err != nil {
			log.Fatal("%v", err)
		}
		writeOutput(settings.outputFile, out)
	}
}

func readInput() []byte {
	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("reading input failed: %v", err)
	}
	return contents
}

func writeOutput(outputFile string, data []byte) {
	if err := withOutput(outputFile, 0644, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		log.Fatal("writing output failed: %v", err)
	}
}

// If outputFile is non-empty, the output of f is written to a temporary
// file that replaces outputFile only once f has succeeded. Otherwise, f
// writes directly to stdout.
func withOutput(outputFile string, mode os.FileMode, f func(io.Writer) error) error {
	if len(outputFile) == 0 {
		return f(os.Stdout)
	}
	file, err := safefile.Create(outputFile, mode)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %v", outputFile, err)
	}
	defer file.Close()
	if err := f(file); err != nil {
		return err
	}
	return file.Commit()
}
