package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/cvbuild/pkg/buildenv"
)

func newExportCmd(o *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Publish the directory overrides as shell exports",
		Long: `Apply the resolved OPENCV_INCLUDE_DIR, OPENCV_LIB_DIR and OPENCV_BIN_DIR
overrides and print them as shell export lines. Only variables whose value
changes are printed unless --all is given.

Examples:
  eval "$(cvbuild export --lib-dir /opt/opencv/lib)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := o.buildEnv(cmd)
			if err != nil {
				return err
			}

			overrides := env.Overrides()
			written, err := overrides.Apply(buildenv.OSEnviron{})
			if err != nil {
				return err
			}
			o.logger.Debug("applied overrides", "written", written)

			changed := make(map[string]bool, len(written))
			for _, name := range written {
				changed[name] = true
			}

			for _, kv := range overrides.Vars() {
				name, value := kv[0], kv[1]
				if value == "" || (!all && !changed[name]) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", name, shellQuote(value))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print every non-empty override")
	return cmd
}

// shellQuote wraps s in single quotes so a POSIX shell reads it literally
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
