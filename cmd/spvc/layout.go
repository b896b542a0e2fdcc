package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/spvc/glslstruct"
	"github.com/gogpu/spvc/shader"
	"github.com/gogpu/spvc/shaders"
)

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout [definitions.toml|definitions.yaml]",
		Short: "Print struct member offsets under each layout rule",
		Long: "Print struct member offsets under the std140 and packed rules. Without an\n" +
			"argument the uniform blocks of the bundled programs are shown.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structs, err := layoutStructs(args)
			if err != nil {
				return err
			}
			for i, st := range structs {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := printLayout(cmd.OutOrStdout(), st); err != nil {
					return err
				}
				if differs(st) {
					a.logger.Warn("packed layout differs from std140", "struct", st.Name)
				}
			}
			return nil
		},
	}
}

func layoutStructs(args []string) ([]shader.Struct, error) {
	if len(args) == 1 {
		set, err := glslstruct.Load(args[0])
		if err != nil {
			return nil, err
		}
		return set.Structs(), nil
	}

	global, err := shaders.GlobalStruct()
	if err != nil {
		return nil, err
	}
	model, err := shaders.ModelStruct()
	if err != nil {
		return nil, err
	}
	return []shader.Struct{global, model}, nil
}

func printLayout(w io.Writer, st shader.Struct) error {
	fmt.Fprintf(w, "%s (std140 %d bytes, packed %d bytes)\n", nameColor.Sprint("struct "+st.Name),
		shader.LayoutStd140.Size(st), shader.LayoutPacked.Size(st))

	std140 := shader.LayoutStd140.Offsets(st)
	packed := shader.LayoutPacked.Offsets(st)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  MEMBER\tTYPE\tSTD140\tPACKED")
	for i, m := range st.Members {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\n", m.Name, m.Type.Display(), std140[i], packed[i])
	}
	return tw.Flush()
}

func differs(st shader.Struct) bool {
	std140 := shader.LayoutStd140.Offsets(st)
	for i, off := range shader.LayoutPacked.Offsets(st) {
		if off != std140[i] {
			return true
		}
	}
	return false
}
