package handler

import (
	"net/http"
	"runtime"

	"github.com/Rama-Divya/Myhero/internal/logger"
)

// Set through -ldflags "-X github.com/Rama-Divya/Myhero/internal/handler.Version=..."
var (
	Version   = ""
	BuildTime = "unknown"
	GitCommit = "unset"
)

// BuildInfo names the running deployment
type BuildInfo struct {
	Service     string
	Version     string
	Environment string
}

// VersionInfo is the /version payload
type VersionInfo struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
	GoVersion   string `json:"go_version"`
	BuildTime   string `json:"build_time,omitempty"`
	GitCommit   string `json:"git_commit,omitempty"`
}

// HandleVersion reports which build of the unlock service is answering.
// A linked-in Version wins over the configured one.
func HandleVersion(info BuildInfo) http.HandlerFunc {
	body := VersionInfo{
		Service:     firstNonEmpty(info.Service, logger.DefaultServiceName),
		Version:     firstNonEmpty(Version, info.Version, logger.DefaultVersion),
		Environment: info.Environment,
		GoVersion:   runtime.Version(),
		BuildTime:   BuildTime,
		GitCommit:   GitCommit,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, body)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
