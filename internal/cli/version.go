package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/cvbuild/pkg/buildenv"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "cvbuild version 0.1.0")
			fmt.Fprintln(out, "OpenCV build environment resolver")
			fmt.Fprintf(out, "Default OpenCV version: %s\n", buildenv.DefaultOpenCVVersion)
		},
	}
}
