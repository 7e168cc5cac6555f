package metadata

// Set at build time through -ldflags "-X".
var (
	Version    = "freshest"
	CommitHash = "n/a"
	BuildTime  = "n/a"
)
