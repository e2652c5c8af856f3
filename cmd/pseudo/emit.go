package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/benbjohnson/pseudo"
	"github.com/davecgh/go-spew/spew"
)

// EmitCommand represents a command for emitting pseudocode from a listing.
type EmitCommand struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEmitCommand returns a new instance of EmitCommand.
func NewEmitCommand() *EmitCommand {
	return &EmitCommand{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the "emit" subcommand.
func (cmd *EmitCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pseudo-emit", flag.ContinueOnError)
	fs.SetOutput(cmd.Stderr)
	verbose := fs.Bool("v", false, "verbose")
	color := fs.Bool("color", false, "colorize output")
	dump := fs.Bool("dump", false, "dump expressions to stderr")
	fs.Usage = cmd.usage
	if err := fs.Parse(args); err != nil {
		return err
	} else if fs.NArg() > 1 {
		return fmt.Errorf("too many files specified")
	}

	log.SetFlags(0)
	log.SetOutput(cmd.Stderr)
	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}

	// Read from the named file, if specified. Otherwise use STDIN.
	r := cmd.Stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	listing, err := ReadListing(r)
	if err != nil {
		return fmt.Errorf("read listing: %w", err)
	}
	log.Printf("read %d instructions", listing.Len())

	if *dump {
		for _, expr := range listing.Exprs() {
			spew.Fdump(cmd.Stderr, expr)
		}
	}

	var p pseudo.Printer = pseudo.PlainPrinter{}
	if *color {
		p = pseudo.NewColorPrinter(pseudo.DefaultTheme)
	}
	_, err = io.WriteString(cmd.Stdout, listing.Render(p))
	return err
}

func (cmd *EmitCommand) usage() {
	fmt.Fprintln(cmd.Stderr, `
Emits pseudocode for an assembly listing read from a file or STDIN.

Each line holds one instruction with an optional address prefix:

	0x1000: add eax, 1

Usage:

	pseudo emit [arguments] [path]

Arguments:

	-v
	    Enable verbose logging.
	-color
	    Colorize output.
	-dump
	    Dump each expression to STDERR.
`[1:])
}

// ReadListing reads one instruction per line from r. Blank lines and lines
// starting with "#" are skipped. Lines without an address are numbered
// sequentially after the previous address.
func ReadListing(r io.Reader) (*pseudo.Listing, error) {
	listing := pseudo.NewListing()

	var addr uint64
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse optional "ADDR:" prefix.
		if i := strings.Index(line, ":"); i > 0 {
			if v, err := strconv.ParseUint(line[:i], 0, 64); err == nil {
				addr, line = v, strings.TrimSpace(line[i+1:])
			}
		}

		if _, ok := listing.Get(addr); ok {
			return nil, fmt.Errorf("line %d: duplicate address %#x", lineNo, addr)
		}

		expr := ParseInstruction(line)
		log.Printf("%#x: %s => %T", addr, line, expr)
		listing = listing.Set(addr, expr)
		addr++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return listing, nil
}

// ParseInstruction returns the expression for a single instruction line.
// Operands are split on commas and are otherwise passed through unchanged.
// Unrecognized mnemonics and operand counts produce an unknown expression.
func ParseInstruction(line string) pseudo.Expr {
	mnemonic, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		mnemonic, rest = line[:i], strings.TrimSpace(line[i+1:])
	}

	var args []pseudo.Operand
	if rest != "" {
		for _, s := range strings.Split(rest, ",") {
			args = append(args, pseudo.Operand(strings.TrimSpace(s)))
		}
	}

	switch mnemonic = strings.ToLower(mnemonic); mnemonic {
	case "add", "sub", "and", "or", "xor":
		op := binaryOps[mnemonic]
		switch len(args) {
		case 2:
			return pseudo.NewBinaryExpr(op, args[0], args[0], args[1])
		case 3:
			return pseudo.NewBinaryExpr(op, args[0], args[1], args[2])
		}
	case "mov":
		if len(args) == 2 {
			return pseudo.Assign(args[0], args[1])
		}
	case "inc":
		if len(args) == 1 {
			return pseudo.Add(args[0], args[0], pseudo.One)
		}
	case "dec":
		if len(args) == 1 {
			return pseudo.Subtract(args[0], args[0], pseudo.One)
		}
	case "neg", "not":
		op := unaryOps[mnemonic]
		switch len(args) {
		case 1:
			return pseudo.NewMathAssignExpr(op, args[0], args[0])
		case 2:
			return pseudo.NewMathAssignExpr(op, args[0], args[1])
		}
	}
	return pseudo.Unknown(line)
}

var binaryOps = map[string]pseudo.Op{
	"add": pseudo.ADD,
	"sub": pseudo.SUB,
	"and": pseudo.AND,
	"or":  pseudo.OR,
	"xor": pseudo.XOR,
}

var unaryOps = map[string]pseudo.Op{
	"neg": pseudo.NEG,
	"not": pseudo.NOT,
}
