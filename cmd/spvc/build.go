package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/spvc/shader"
	"github.com/gogpu/spvc/shaders"
)

// interfacesFile receives the entry point metadata of a build.
const interfacesFile = "interfaces.msgpack"

func newBuildCmd(a *app) *cobra.Command {
	var (
		outDir  string
		version string
		layout  string
		jobs    int
	)

	cmd := &cobra.Command{
		Use:   "build [program...]",
		Short: "Build shader programs to SPIR-V",
		Long: "Build shader programs to SPIR-V. Without arguments the programs listed in\n" +
			"spvc.toml are built, or every program when none are listed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("out") {
				cfg.OutDir = outDir
			}
			if cmd.Flags().Changed("spirv-version") {
				cfg.Version = version
			}
			if cmd.Flags().Changed("layout") {
				cfg.Layout = layout
			}

			names := args
			if len(names) == 0 {
				names = cfg.Shaders
			}
			if len(names) == 0 {
				names = shaders.Names()
			}
			return a.build(cmd.Context(), cmd.OutOrStdout(), cfg, names, jobs)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: out_dir from config)")
	cmd.Flags().StringVar(&version, "spirv-version", "", "SPIR-V version, e.g. 1.3")
	cmd.Flags().StringVar(&layout, "layout", "", "struct layout rule (std140|packed)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "parallel builds (default: GOMAXPROCS)")
	return cmd
}

type buildResult struct {
	name       string
	path       string
	size       int
	interfaces []shader.EntryPointInterface
}

// build compiles every named program in parallel. Each program owns its
// own Shader, so no state is shared between goroutines.
func (a *app) build(ctx context.Context, w io.Writer, cfg Config, names []string, jobs int) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	opts.Logger = a.logger

	programs := make([]shaders.Program, len(names))
	for i, name := range names {
		p, ok := shaders.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown program %q", name)
		}
		programs[i] = p
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]buildResult, len(programs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(programs)))
	for i, p := range programs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := buildProgram(p, opts, cfg.OutDir)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var interfaces []shader.EntryPointInterface
	for _, r := range results {
		fmt.Fprintf(w, "%s %s -> %s (%d bytes)\n", okColor.Sprint("built"), nameColor.Sprint(r.name), r.path, r.size)
		interfaces = append(interfaces, r.interfaces...)
	}

	if cfg.InterfaceFormat == "msgpack" {
		path := filepath.Join(cfg.OutDir, interfacesFile)
		if err := writeInterfaces(path, interfaces); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %d entry points -> %s\n", okColor.Sprint("wrote"), len(interfaces), path)
	}
	return nil
}

func buildProgram(p shaders.Program, opts shader.Options, outDir string) (buildResult, error) {
	s, err := p.Build(opts)
	if err != nil {
		return buildResult{}, err
	}
	module, err := s.Module()
	if err != nil {
		return buildResult{}, err
	}

	data := module.Bytes()
	path := filepath.Join(outDir, p.Name+".spv")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return buildResult{}, fmt.Errorf("failed to write module: %w", err)
	}
	opts.Logger.Debug("module written", "program", p.Name, "path", path, "bytes", len(data))

	return buildResult{name: p.Name, path: path, size: len(data), interfaces: s.Interfaces()}, nil
}

func writeInterfaces(path string, interfaces []shader.EntryPointInterface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create interface file: %w", err)
	}
	if err := shader.EncodeInterfaces(f, interfaces); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
