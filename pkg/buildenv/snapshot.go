package buildenv

// Paths are the derived locations of a build
type Paths struct {
	Root           string `json:"root" yaml:"root"`
	Src            string `json:"src" yaml:"src"`
	ContribSrc     string `json:"contribSrc" yaml:"contribSrc"`
	ContribModules string `json:"contribModules" yaml:"contribModules"`
	Build          string `json:"build" yaml:"build"`
	Include        string `json:"include" yaml:"include"`
	Include4       string `json:"include4" yaml:"include4"`
	Lib            string `json:"lib" yaml:"lib"`
	Bin            string `json:"bin" yaml:"bin"`
	AutoBuildFile  string `json:"autoBuildFile" yaml:"autoBuildFile"`
}

// Snapshot is a serialisable view of a BuildEnv
type Snapshot struct {
	OpenCVVersion     string    `json:"opencvVersion" yaml:"opencvVersion"`
	AutoBuildFlags    string    `json:"autoBuildFlags" yaml:"autoBuildFlags"`
	BuildWithCUDA     bool      `json:"buildWithCuda" yaml:"buildWithCuda"`
	WithoutContrib    bool      `json:"withoutContrib" yaml:"withoutContrib"`
	AutoBuildDisabled bool      `json:"autoBuildDisabled" yaml:"autoBuildDisabled"`
	RootDir           string    `json:"rootDir" yaml:"rootDir"`
	ModuleRoot        string    `json:"moduleRoot" yaml:"moduleRoot"`
	OptHash           string    `json:"optHash" yaml:"optHash"`
	Overrides         Overrides `json:"overrides" yaml:"overrides"`
	Paths             Paths     `json:"paths" yaml:"paths"`
}

// Paths computes every derived path of e
func (e *BuildEnv) Paths() Paths {
	return Paths{
		Root:           e.RootBuildDir(),
		Src:            e.SrcDir(),
		ContribSrc:     e.ContribSrcDir(),
		ContribModules: e.ContribModulesDir(),
		Build:          e.BuildDir(),
		Include:        e.IncludeDir(),
		Include4:       e.Include4Dir(),
		Lib:            e.LibDir(),
		Bin:            e.BinDir(),
		AutoBuildFile:  e.AutoBuildFile(),
	}
}

func (e *BuildEnv) Snapshot() Snapshot {
	return Snapshot{
		OpenCVVersion:     e.version,
		AutoBuildFlags:    e.autoBuildFlags,
		BuildWithCUDA:     e.buildWithCUDA,
		WithoutContrib:    e.withoutContrib,
		AutoBuildDisabled: e.autoBuildDisabled,
		RootDir:           e.rootDir,
		ModuleRoot:        e.moduleRoot,
		OptHash:           e.OptHash(),
		Overrides:         e.overrides,
		Paths:             e.Paths(),
	}
}
