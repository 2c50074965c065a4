package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/cvbuild/pkg/buildenv"
)

func newEnvCmd(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the resolved build configuration",
		Long: `Display every resolved option and derived path of the OpenCV build.

Examples:
  cvbuild env
  cvbuild env --cuda -o json
  OPENCV4NODEJS_AUTOBUILD_OPENCV_VERSION=4.5.5 cvbuild env -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := o.buildEnv(cmd)
			if err != nil {
				return err
			}
			return renderSnapshot(cmd.OutOrStdout(), env.Snapshot(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")
	return cmd
}

func renderSnapshot(w io.Writer, s buildenv.Snapshot, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(w, "OpenCV version:     %s\n", s.OpenCVVersion)
		fmt.Fprintf(w, "Build flags:        %s\n", s.AutoBuildFlags)
		fmt.Fprintf(w, "CUDA:               %t\n", s.BuildWithCUDA)
		fmt.Fprintf(w, "Without contrib:    %t\n", s.WithoutContrib)
		fmt.Fprintf(w, "Autobuild disabled: %t\n", s.AutoBuildDisabled)
		fmt.Fprintf(w, "Root:               %s\n", s.RootDir)
		fmt.Fprintf(w, "Module root:        %s\n", s.ModuleRoot)
		fmt.Fprintf(w, "Flag hash:          %s\n", s.OptHash)
		if s.Overrides.IncludeDir != "" {
			fmt.Fprintf(w, "Include override:   %s\n", s.Overrides.IncludeDir)
		}
		if s.Overrides.LibDir != "" {
			fmt.Fprintf(w, "Lib override:       %s\n", s.Overrides.LibDir)
		}
		if s.Overrides.BinDir != "" {
			fmt.Fprintf(w, "Bin override:       %s\n", s.Overrides.BinDir)
		}
		fmt.Fprintln(w)
		writePaths(w, s.Paths)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writePaths(w io.Writer, p buildenv.Paths) {
	for _, kv := range [][2]string{
		{"root", p.Root},
		{"src", p.Src},
		{"contrib-src", p.ContribSrc},
		{"contrib-modules", p.ContribModules},
		{"build", p.Build},
		{"include", p.Include},
		{"include4", p.Include4},
		{"lib", p.Lib},
		{"bin", p.Bin},
		{"auto-build-file", p.AutoBuildFile},
	} {
		fmt.Fprintf(w, "%-16s %s\n", kv[0], kv[1])
	}
}

func newPathsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "paths [name]",
		Short: "Print the derived build directories",
		Long: `Print every derived directory, or only the named one.

Examples:
  cvbuild paths
  cvbuild paths lib
  cmake -S "$(cvbuild paths src)" -B "$(cvbuild paths build)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := o.buildEnv(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				writePaths(out, env.Paths())
				return nil
			}

			path, ok := pathByName(env.Paths(), args[0])
			if !ok {
				return fmt.Errorf("unknown path %q", args[0])
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}
}

func pathByName(p buildenv.Paths, name string) (string, bool) {
	switch name {
	case "root":
		return p.Root, true
	case "src":
		return p.Src, true
	case "contrib-src":
		return p.ContribSrc, true
	case "contrib-modules":
		return p.ContribModules, true
	case "build":
		return p.Build, true
	case "include":
		return p.Include, true
	case "include4":
		return p.Include4, true
	case "lib":
		return p.Lib, true
	case "bin":
		return p.Bin, true
	case "auto-build-file":
		return p.AutoBuildFile, true
	}
	return "", false
}

func newFlagsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "Print the extra CMake flags, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := o.buildEnv(cmd)
			if err != nil {
				return err
			}
			tokens := env.ParseAutoBuildFlags()
			o.logger.Debug("using flags", "env", buildenv.EnvAutoBuildFlags, "count", len(tokens))
			for _, flag := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), flag)
			}
			return nil
		},
	}
}
