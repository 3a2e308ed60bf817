// Package doctor runs health checks over the manifest, the version manager,
// and the convergence of pinned tools.
package doctor

// Status is the outcome level of a single check.
type Status string

// Check outcome levels.
const (
	StatusOK   Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is the outcome of one health check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
