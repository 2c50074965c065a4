package buildenv

import (
	"io"
	"log/slog"
	"sync"

	"zombiezen.com/go/nix"
)

const optHashLen = 5

// OptHash returns the suffix that keeps build trees with different flag sets
// apart: "-" followed by the first five hex digits of the MD5 of the flags,
// with "cuda" and "noContrib" appended when enabled. It is "" when there is
// nothing to hash.
func OptHash(flags string, cuda, withoutContrib bool) string {
	in := flags
	if cuda {
		in += "cuda"
	}
	if withoutContrib {
		in += "noContrib"
	}
	if in == "" {
		return ""
	}

	h := nix.NewHasher(nix.MD5)
	_, _ = io.WriteString(h, in) // writes to a hasher never fail
	return "-" + h.SumHash().RawBase16()[:optHashLen]
}

// OptHash returns the build directory suffix for e
func (e *BuildEnv) OptHash() string {
	return OptHash(e.autoBuildFlags, e.buildWithCUDA, e.withoutContrib)
}

// FlagReporter logs, once, whether extra build flags are in effect
type FlagReporter struct {
	once sync.Once
}

// Report logs the flag status of e the first time it is called
func (r *FlagReporter) Report(logger *slog.Logger, e *BuildEnv) {
	r.once.Do(func() {
		if logger == nil {
			return
		}
		if e.autoBuildFlags == "" {
			logger.Info("no extra flags will be appended to the build command", "env", EnvAutoBuildFlags)
			return
		}
		logger.Info("extra build flags are defined", "env", EnvAutoBuildFlags, "flags", e.autoBuildFlags)
	})
}
