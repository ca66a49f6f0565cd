package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/PurpleSec/escape"
	"github.com/PurpleSec/logx"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"

	"knivets.com/xorcrack/bitops"
	"knivets.com/xorcrack/codec"
	"knivets.com/xorcrack/crack"
)

const usage = `Hex, base64 and single-byte XOR analysis.

Usage:
  xorcrack -m hex2b64 HEX...
  xorcrack -m b642hex BASE64...
  xorcrack -m xor HEX HEX
  xorcrack -m encrypt -k KEY TEXT...
  xorcrack -m single [--keys SET] HEX...
  xorcrack -m detect [--keys SET] [--workers N] -|FILE...

Options:`

type options struct {
	mode    string
	key     string
	keys    string
	workers int
	json    bool
}

func main() {
	var o options
	pHelp := pflag.BoolP("help", "h", false, "prints this help menu")
	pflag.StringVarP(&o.mode, "mode", "m", "", "one of hex2b64, b642hex, xor, encrypt, single, detect")
	pflag.StringVarP(&o.key, "key", "k", "", "repeating key for encrypt mode")
	pflag.StringVar(&o.keys, "keys", "printable", "candidate key set: printable, lower, alnum, full or literal characters")
	pflag.IntVarP(&o.workers, "workers", "w", 0, "worker goroutines for detect mode (default one per CPU)")
	pflag.BoolVarP(&o.json, "json", "j", false, "prints results as JSON")
	pVerbose := pflag.BoolP("verbose", "v", false, "logs per-line scan details")
	pQuiet := pflag.BoolP("quiet", "q", false, "logs errors only")
	pflag.CommandLine.SortFlags = false
	pflag.Parse()

	if *pHelp || o.mode == "" {
		fmt.Fprintln(os.Stderr, usage)
		pflag.PrintDefaults()
		os.Exit(0)
	}

	level := logx.Info
	switch {
	case *pQuiet:
		level = logx.Error
	case *pVerbose:
		level = logx.Trace
	}
	log := logx.Console(level)

	if err := run(o, pflag.Args(), os.Stdout, log); err != nil {
		log.Error("%s: %s", o.mode, err)
		os.Exit(1)
	}
}

func run(o options, args []string, w io.Writer, log logx.Log) error {
	switch o.mode {
	case "hex2b64":
		return convert(args, w, codec.HexToBase64)
	case "b642hex":
		return convert(args, w, codec.Base64ToHex)
	case "xor":
		return xorHex(args, w)
	case "encrypt":
		return encrypt(args, o.key, w)
	case "single", "detect":
		ks, err := crack.ParseKeyspace(o.keys)
		if err != nil {
			return err
		}
		s := crack.NewSolver()
		s.Keys = ks
		if o.mode == "single" {
			return single(args, s, o.json, w)
		}
		sc := crack.NewScanner(log)
		sc.Solver = s
		if o.workers > 0 {
			sc.Workers = o.workers
		}
		return detect(args, sc, o.json, w, log)
	}
	return fmt.Errorf("unknown mode %q", o.mode)
}

func convert(args []string, w io.Writer, fn func(string) (string, error)) error {
	for _, arg := range args {
		res, err := fn(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, res)
	}
	return nil
}

func xorHex(args []string, w io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("xor needs exactly 2 hex arguments, got %d", len(args))
	}
	a, err := codec.HexToBytes(args[0])
	if err != nil {
		return err
	}
	b, err := codec.HexToBytes(args[1])
	if err != nil {
		return err
	}
	res, err := bitops.XOR(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, codec.BytesToHex(res))
	return nil
}

func encrypt(args []string, key string, w io.Writer) error {
	for _, arg := range args {
		res, err := bitops.RollingXOR([]byte(arg), []byte(key))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, codec.BytesToHex(res))
	}
	return nil
}

func single(args []string, s *crack.Solver, asJSON bool, w io.Writer) error {
	for _, arg := range args {
		res, err := s.Solve(arg)
		if err != nil {
			return err
		}
		printCandidate(w, asJSON, "", 0, res)
	}
	return nil
}

func detect(args []string, sc *crack.Scanner, asJSON bool, w io.Writer, log logx.Log) error {
	for _, path := range args {
		lines, err := readLines(path)
		if err != nil {
			return err
		}
		name := path
		if path != "-" {
			name = vainpath.Clean(path)
		}
		log.Debug("Scanning %d lines from %q...", len(lines), name)
		res, err := sc.Scan(lines)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		printCandidate(w, asJSON, name, res.Line, res.Candidate)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	in := io.Reader(os.Stdin)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var lines []string
	input := bufio.NewScanner(in)
	for input.Scan() {
		lines = append(lines, input.Text())
	}
	return lines, input.Err()
}

func printCandidate(w io.Writer, asJSON bool, name string, line int, c crack.Candidate) {
	if !asJSON {
		if name != "" {
			fmt.Fprintf(w, "%s:%d ", name, line)
		}
		fmt.Fprintf(w, "key=%q score=%d %q\n", c.Key, c.Score, c.Text())
		return
	}
	out := `{"key":` + escape.JSON(string(c.Key)) + `,"score":` + strconv.Itoa(c.Score) + `,"plaintext":` + escape.JSON(c.Text())
	if name != "" {
		out += `,"file":` + escape.JSON(name) + `,"line":` + strconv.Itoa(line)
	}
	fmt.Fprintln(w, out+`}`)
}
