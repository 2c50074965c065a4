package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/cvbuild/pkg/autobuild"
	"github.com/arc-language/cvbuild/pkg/layout"
)

// errStale is returned by "state --check" when the last build cannot be reused
var errStale = errors.New("build state does not match the current configuration")

func newStateCmd(o *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Compare the recorded build with the current configuration",
		Long: `Read auto-build.json from the build tree and report whether the recorded
build matches the resolved configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := o.buildEnv(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			s, err := autobuild.Load(env.AutoBuildFile())
			if errors.Is(err, autobuild.ErrNoState) {
				fmt.Fprintf(out, "No build recorded at %s\n", env.AutoBuildFile())
				if check {
					return errStale
				}
				return nil
			}
			if err != nil {
				return err
			}

			mismatch := s.Compare(env)
			if mismatch.OK() {
				fmt.Fprintf(out, "✓ OpenCV %s is up to date (%d modules)\n", s.OpencvVersion, len(s.Modules))
				return nil
			}

			fmt.Fprintf(out, "✗ Recorded build is stale:\n")
			for _, reason := range mismatch {
				fmt.Fprintf(out, "  - %s\n", reason)
			}
			if check {
				return errStale
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "exit with an error when the build is missing or stale")
	cmd.AddCommand(newStateRecordCmd(o))
	return cmd
}

func newStateRecordCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Write auto-build.json for the libraries found in the build tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := o.buildEnv(cmd)
			if err != nil {
				return err
			}

			s := autobuild.New(env, layout.New(env))
			if len(s.Modules) == 0 {
				return fmt.Errorf("no OpenCV libraries found in %s", env.LibDir())
			}
			if err := autobuild.Save(env.AutoBuildFile(), s); err != nil {
				return err
			}

			o.logger.Info("recorded build", "file", env.AutoBuildFile(), "modules", len(s.Modules))
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded %d modules in %s\n", len(s.Modules), env.AutoBuildFile())
			return nil
		},
	}
}
