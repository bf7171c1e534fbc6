// Command sexpjit reads, compiles, and runs a single S-expression program.
// Grounded on bfcc's cmd/bfcc/main.go flag.NewFlagSet-per-subcommand
// dispatch.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lcox74/sexpjit/internal/config"
	"github.com/lcox74/sexpjit/internal/tracelog"
	"github.com/lcox74/sexpjit/jit"
	"github.com/lcox74/sexpjit/reader"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: sexpjit <command> [options] <file>

commands:
  run [-trace] [-v] <file>    Compile and run a program
  parse <file>                Parse a program and print its tree`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "run":
		cmdRun(args)
	case "parse":
		cmdParse(args)
	default:
		usage()
	}
}

func readSource(file string) []byte {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return src
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	build := config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: sexpjit run [-trace] [-v] <file>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	fs.Parse(args)

	cfg := build()
	if cfg.File == "" {
		fs.Usage()
	}

	logger := tracelog.New(os.Stderr, cfg.LogLevel())

	src := readSource(cfg.File)
	root, err := reader.Parse(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := jit.Options{Output: os.Stdout}
	if cfg.Trace {
		opts.Trace = logger.Trace
	}

	prog, err := jit.Compile(root, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer prog.Close()

	result, err := prog.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(reader.Format(result))
}

func cmdParse(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: sexpjit parse <file>")
		os.Exit(1)
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
	}

	src := readSource(fs.Arg(0))
	root, err := reader.Parse(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(reader.Format(root))
}
