// Package build provides build information that is linked into the application. Other
// packages within this project can use this information in logs etc..
package build

var (
	// Version is the build version of the binary (e.g. v0.1.0, .....).
	Version = "dev"

	// Commit is the git commit SHA that produced the build.
	Commit = "none"

	// Date is the date when the binary was built.
	Date = "unknown"

	// ProjectName is the project name.
	ProjectName = "seqops"
)
