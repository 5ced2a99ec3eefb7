package health

// Probe names double as the trailing path segment of the single-probe
// monitoring endpoints.
const (
	DatabaseProbeName = "database"
	SystemProbeName   = "system"
	DiskProbeName     = "disk"
	IssuerProbeName   = "issuer"
)
