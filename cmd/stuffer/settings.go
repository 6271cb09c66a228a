package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt/v2"

	"sigsum.org/stuffer-go/pkg/hash"
	"sigsum.org/stuffer-go/pkg/log"
)

type CodecSettings struct {
	decode     bool
	outputFile string
}

type DigestSettings struct {
	alg        hash.Algorithm
	fips       bool
	outputFile string
}

type SniSettings struct {
	host       string
	outputFile string
}

func newOptionSet(args []string, params string) *getopt.Set {
	set := getopt.New()
	set.SetProgram(args[0] + " " + args[1])
	set.SetParameters(params)
	return set
}

// Also adds and processes the help and log-level options.
func parseArgs(set *getopt.Set, args []string, maxArgs int, usage string) {
	help := false
	logLevel := "info"
	set.FlagLong(&help, "help", 0, "Show usage message and exit")
	set.FlagLong(&logLevel, "log-level", 0, "One of debug, info, warning, error", "level")
	err := set.Getopt(args[1:], nil)
	// Check help first; if seen, ignore errors about missing mandatory arguments.
	if help {
		fmt.Print(usage[1:] + "\n")
		set.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "err: %v\n", err)
		set.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if set.NArgs() > maxArgs {
		log.Fatal("Too many arguments.")
	}
	if err := log.SetLevelFromString(logLevel); err != nil {
		log.Fatal("%v", err)
	}
}

func parseNoArgs(set *getopt.Set, args []string, usage string) {
	parseArgs(set, args, 0, usage)
}

func (s *CodecSettings) parse(args []string, encoding string) {
	usage := fmt.Sprintf(`
Encode data read on stdin as %s, or decode it with -d.
`, encoding)
	set := newOptionSet(args, "< input")
	set.FlagLong(&s.decode, "decode", 'd', "Decode instead of encode")
	set.FlagLong(&s.outputFile, "output", 'o', "Output file, written atomically", "output-file")
	parseNoArgs(set, args, usage)
}

func (s *DigestSettings) parse(args []string) {
	const usage = `
Compute the digest of data read on stdin, and output it in hex.  The
md5+sha1 algorithm is the concatenated digests used by TLS 1.0.  With
--fips, md5 based algorithms are refused.
`
	algName := "sha256"
	set := newOptionSet(args, "< input")
	set.FlagLong(&algName, "algorithm", 'a', "One of md5, sha1, sha224, sha256, sha384, sha512, md5+sha1", "alg")
	set.FlagLong(&s.fips, "fips", 0, "Use the FIPS backend")
	set.FlagLong(&s.outputFile, "output", 'o', "Output file, written atomically", "output-file")
	parseNoArgs(set, args, usage)
	alg, err := hash.ParseAlgorithm(algName)
	if err != nil {
		log.Fatal("%v", err)
	}
	s.alg = alg
}

func (s *SniSettings) parse(args []string) {
	const usage = `
Output, in hex, a TLS server_name extension for the given host.  The
host name is normalized and converted to A-label form first.
`
	set := newOptionSet(args, "")
	set.FlagLong(&s.host, "name", 'n', "Server host name", "host").Mandatory()
	set.FlagLong(&s.outputFile, "output", 'o', "Output file, written atomically", "output-file")
	parseNoArgs(set, args, usage)
}
