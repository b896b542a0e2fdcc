package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/spvc/shaders"
	"github.com/gogpu/spvc/spirv"
)

func newDisCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dis <file.spv|program>",
		Short: "Disassemble a SPIR-V module",
		Long:  "Disassemble a SPIR-V file, or build a bundled program and disassemble it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := a.loadWords(args[0])
			if err != nil {
				return err
			}
			return disassemble(cmd.OutOrStdout(), words)
		},
	}
}

// loadWords reads a module from disk, falling back to building the
// program of that name.
func (a *app) loadWords(arg string) ([]uint32, error) {
	data, err := os.ReadFile(arg)
	if err == nil {
		module, err := spirv.ModuleFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		return module.Words(), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	p, ok := shaders.Lookup(arg)
	if !ok {
		return nil, fmt.Errorf("%s: no such file or program", arg)
	}
	opts, err := a.cfg.options()
	if err != nil {
		return nil, err
	}
	opts.Logger = a.logger
	s, err := p.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	module, err := s.Module()
	if err != nil {
		return nil, err
	}
	return module.Words(), nil
}

func disassemble(w io.Writer, words []uint32) error {
	d := &spirv.Disassembler{
		Opcode: func(s string) string { return opcodeColor.Sprint(s) },
		ID:     func(s string) string { return idColor.Sprint(s) },
	}
	return d.Disassemble(w, words)
}
