package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/cvbuild/pkg/platform"
)

func newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Show the build host and available build tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plat := platform.Detect()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Platform: %s/%s\n", plat.OS, plat.Arch)
			fmt.Fprintf(out, "CPUs: %d\n\n", plat.CPUs)
			fmt.Fprintf(out, "Available build tools:\n")
			for _, tool := range plat.Available {
				fmt.Fprintf(out, "  %s\n", tool)
			}
			if plat.Generator != "" {
				fmt.Fprintf(out, "\nCMake generator: %s\n", plat.Generator)
			}
			if missing := plat.Missing(); len(missing) > 0 {
				fmt.Fprintf(out, "\nMissing: %v\n", missing)
			}

			return nil
		},
	}
}
