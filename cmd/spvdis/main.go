// spvdis - SPIR-V disassembler
// Generates valid .spvasm text format
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/gogpu/spvc/spirv"
)

var noColor = flag.Bool("no-color", false, "disable colored output")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spvdis [options] <file.spv>\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *noColor {
		color.NoColor = true
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	module, err := spirv.ModuleFromBytes(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opcode := color.New(color.FgCyan)
	id := color.New(color.FgYellow)
	d := &spirv.Disassembler{
		Opcode: func(s string) string { return opcode.Sprint(s) },
		ID:     func(s string) string { return id.Sprint(s) },
	}
	if err := d.Disassemble(os.Stdout, module.Words()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
