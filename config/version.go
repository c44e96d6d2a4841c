package config

// Build information, set with -ldflags "-X github.com/boolean-maybe/todo/config.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
