/*
Package layout finds the artifacts of an OpenCV build.

It handles:
  - Locating the include, library and binary directories of a build,
    honouring OPENCV_INCLUDE_DIR style overrides for prebuilt installs
  - Discovering built libraries and the OpenCV modules they provide
  - Generating compiler and linker flags

Basic Usage:

    import "github.com/arc-language/cvbuild/pkg/layout"

    l := layout.New(env)

    // Find specific module
    core := l.FindLibrary("opencv_core")
    if core != nil {
        fmt.Printf("Found: %s at %s\n", core.Module, core.Path)
    }

    // Get compiler flags
    flags := l.CompilerFlags()
    for _, flag := range flags.IncludeFlags {
        fmt.Println(flag) // -I/home/me/.cache/cvbuild/opencv-3.4.16/build/include
    }

Platform Layouts:

Windows builds produce opencv_core3416.lib under lib/Release, while other
platforms produce libopencv_core.so (or .dylib) under lib. Module names are
derived from either form.
*/
package layout
