package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/katalvlaran/lvpack/internal/version.Version=...
	Commit  = "unknown" // -X github.com/katalvlaran/lvpack/internal/version.Commit=...
	Date    = "unknown" // -X github.com/katalvlaran/lvpack/internal/version.Date=...
)
