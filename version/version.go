package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time using -ldflags.
var Version = "dev"

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified"`
}

// Get assembles build information from the ldflags version and the embedded
// module build info.
func Get() Info {
	info := Info{Version: Version}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
			if len(info.GitCommit) > 7 {
				info.GitCommit = info.GitCommit[:7]
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String renders the version the way it appears in logs: version, commit,
// and a -modified marker for builds from a dirty tree.
func (i Info) String() string {
	s := i.Version
	if i.GitCommit != "" {
		s += "-" + i.GitCommit
	}
	if i.Modified {
		s += "-modified"
	}
	return s
}

// UserAgent returns the User-Agent value for outgoing requests.
func UserAgent() string {
	return fmt.Sprintf("swapkit/%s", Get())
}
