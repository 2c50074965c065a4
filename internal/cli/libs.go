package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/cvbuild/pkg/layout"
)

func newLibsCmd(o *options) *cobra.Command {
	var cflags, ldflags bool

	cmd := &cobra.Command{
		Use:   "libs",
		Short: "List the OpenCV modules found in the library directory",
		Long: `List the built (or prebuilt) OpenCV modules and their libraries.

Examples:
  cvbuild libs
  cvbuild libs --cflags
  cvbuild libs --ldflags --lib-dir /opt/opencv/lib`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := o.buildEnv(cmd)
			if err != nil {
				return err
			}
			l := layout.New(env)
			out := cmd.OutOrStdout()

			if cflags || ldflags {
				flags := l.CompilerFlags()
				var parts []string
				if cflags {
					parts = append(parts, flags.IncludeFlags...)
				}
				if ldflags {
					parts = append(parts, flags.LibraryFlags...)
					parts = append(parts, flags.LinkFlags...)
				}
				fmt.Fprintln(out, strings.Join(parts, " "))
				return nil
			}

			libs := l.ModuleLibraries()
			if len(libs) == 0 {
				fmt.Fprintf(out, "No OpenCV libraries found in %s\n", strings.Join(l.Libraries, ", "))
				return nil
			}
			for _, lib := range libs {
				fmt.Fprintf(out, "%-16s %s\n", lib.Module, lib.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cflags, "cflags", false, "print compiler include flags")
	cmd.Flags().BoolVar(&ldflags, "ldflags", false, "print linker flags")
	return cmd
}
