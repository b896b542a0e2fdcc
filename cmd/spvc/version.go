package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/spvc/spirv"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the spvc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spvc version %s (SPIR-V %s to %s, generator 0x%08X)\n",
				spvcVersion, spirv.Version1_0, spirv.Version1_6, spirv.GeneratorID)
		},
	}
}
