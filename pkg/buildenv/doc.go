/*
Package buildenv resolves the configuration of a single OpenCV source build.

Options are read from three tiers, highest priority first:

  - explicit parameters passed to New
  - the "opencv4nodejs" section of <root>/package.json
  - process environment variables

Anything left unresolved falls back to its zero value, except the OpenCV
version which defaults to DefaultOpenCVVersion.

Basic Usage:

	env, err := buildenv.New(&buildenv.Params{
	    Version:   "4.5.5",
	    BuildCUDA: buildenv.Bool(true),
	})
	if err != nil {
	    return err
	}

	fmt.Println(env.RootBuildDir()) // ~/.cache/cvbuild/opencv-4.5.5-1a2b3
	fmt.Println(env.LibDir())       // .../build/lib

Derived paths are recomputed on every call and never fail. Directory
overrides (OPENCV_INCLUDE_DIR and friends) are not written to the process
environment by New; callers publish them explicitly with Overrides().Apply.
*/
package buildenv
