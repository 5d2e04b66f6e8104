package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

const (
	name = "go-huggingface"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag or branch the binary was built from, the VCS
// revision, or "dev"
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if rev := setting("vcs.revision"); len(rev) >= 12 {
		return rev[:12]
	}
	return "dev"
}

// UserAgent returns the value sent in the User-Agent header
func UserAgent() string {
	return name + "/" + Version()
}

// JSON returns the build metadata for the named executable
func JSON(execName string) []byte {
	metadata := map[string]string{
		"name":     execName,
		"version":  Version(),
		"compiler": runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		metadata["source"] = info.Main.Path
	}
	if hash := setting("vcs.revision"); hash != "" {
		metadata["hash"] = hash
	}
	if t := setting("vcs.time"); t != "" {
		metadata["build_time"] = t
	}
	if goos, goarch := setting("GOOS"), setting("GOARCH"); goos != "" && goarch != "" {
		metadata["platform"] = goos + "/" + goarch
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func setting(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == key {
				return s.Value
			}
		}
	}
	return ""
}
