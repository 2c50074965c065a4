package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arc-language/cvbuild/pkg/buildenv"
	"github.com/arc-language/cvbuild/pkg/config"
)

// options are shared by every command
type options struct {
	cfgFile    string
	version    string
	rootDir    string
	moduleRoot string
	flags      string
	cuda       bool
	noContrib  bool
	noAuto     bool
	includeDir string
	libDir     string
	binDir     string
	logLevel   string
	logFormat  string

	config   *config.Config
	logger   *slog.Logger
	reporter buildenv.FlagReporter
}

// NewRootCommand builds the cvbuild command tree
func NewRootCommand() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "cvbuild",
		Short: "OpenCV build environment resolver",
		Long: `cvbuild - OpenCV build environment resolver

Resolves how OpenCV should be built from source: which version, which CMake
flags, and where source, build and artifact directories live. Options come
from flags, the opencv4nodejs section of package.json, and the environment,
in that order.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.initConfig,
	}

	// Global flags
	f := rootCmd.PersistentFlags()
	f.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.config/cvbuild/config.yaml)")
	f.StringVar(&o.version, "opencv-version", "", "OpenCV version to build (env "+buildenv.EnvOpenCVVersion+")")
	f.StringVar(&o.rootDir, "root", "", "project root containing package.json (env "+buildenv.EnvInitCwd+")")
	f.StringVar(&o.moduleRoot, "module-root", "", "directory build trees are created in (env "+buildenv.EnvModuleRoot+")")
	f.StringVar(&o.flags, "flags", "", "extra CMake flags, space separated (env "+buildenv.EnvAutoBuildFlags+")")
	f.BoolVar(&o.cuda, "cuda", false, "build CUDA modules (env "+buildenv.EnvBuildCUDA+")")
	f.BoolVar(&o.noContrib, "without-contrib", false, "do not build opencv_contrib (env "+buildenv.EnvWithoutContrib+")")
	f.BoolVar(&o.noAuto, "disable-autobuild", false, "use a prebuilt OpenCV (env "+buildenv.EnvDisableAutoBuild+")")
	f.StringVar(&o.includeDir, "include-dir", "", "prebuilt OpenCV include directory (env "+buildenv.EnvIncludeDir+")")
	f.StringVar(&o.libDir, "lib-dir", "", "prebuilt OpenCV library directory (env "+buildenv.EnvLibDir+")")
	f.StringVar(&o.binDir, "bin-dir", "", "prebuilt OpenCV binary directory (env "+buildenv.EnvBinDir+")")
	registerLoggingFlags(rootCmd, o)

	// Add commands
	rootCmd.AddCommand(newEnvCmd(o))
	rootCmd.AddCommand(newPathsCmd(o))
	rootCmd.AddCommand(newFlagsCmd(o))
	rootCmd.AddCommand(newExportCmd(o))
	rootCmd.AddCommand(newStateCmd(o))
	rootCmd.AddCommand(newLibsCmd(o))
	rootCmd.AddCommand(newPlatformCmd())
	rootCmd.AddCommand(newConfigCmd(o))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute executes the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *options) initConfig(cmd *cobra.Command, _ []string) error {
	var err error
	o.config, err = config.LoadConfig(o.cfgFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
		o.config = config.DefaultConfig()
	}

	// Override config with flags
	if cmd.Flags().Changed("loglevel") || o.config.LogLevel == "" {
		o.config.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("logformat") || o.config.LogFormat == "" {
		o.config.LogFormat = o.logFormat
	}

	o.logger, err = newLogger(cmd.ErrOrStderr(), o.config.LogLevel, o.config.LogFormat)
	return err
}

// params turns config values and the flags that were set into the explicit
// resolution tier. Flags left at their defaults are not passed, so
// package.json and the environment still apply.
func (o *options) params(cmd *cobra.Command) *buildenv.Params {
	flags := cmd.Flags()
	cfg := o.config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	p := &buildenv.Params{
		Version:    cfg.OpenCVVersion,
		RootDir:    cfg.RootDir,
		ModuleRoot: cfg.ModuleRoot,
		Environ:    buildenv.OSEnviron{},
		Logger:     o.logger,
	}

	if flags.Changed("opencv-version") {
		p.Version = o.version
	}
	if flags.Changed("root") {
		p.RootDir = o.rootDir
	}
	if flags.Changed("module-root") {
		p.ModuleRoot = o.moduleRoot
	}
	if flags.Changed("flags") {
		p.AutoBuildFlags = buildenv.String(o.flags)
	}
	if flags.Changed("cuda") {
		p.BuildCUDA = buildenv.Bool(o.cuda)
	}
	if flags.Changed("without-contrib") {
		p.WithoutContrib = buildenv.Bool(o.noContrib)
	}
	if flags.Changed("disable-autobuild") {
		p.DisableAutoBuild = buildenv.Bool(o.noAuto)
	}
	if flags.Changed("include-dir") {
		p.IncludeDir = buildenv.String(o.includeDir)
	}
	if flags.Changed("lib-dir") {
		p.LibDir = buildenv.String(o.libDir)
	}
	if flags.Changed("bin-dir") {
		p.BinDir = buildenv.String(o.binDir)
	}

	return p
}

// buildEnv resolves the build environment for cmd
func (o *options) buildEnv(cmd *cobra.Command) (*buildenv.BuildEnv, error) {
	env, err := buildenv.New(o.params(cmd))
	if err != nil {
		return nil, err
	}
	o.reporter.Report(o.logger, env)
	return env, nil
}
