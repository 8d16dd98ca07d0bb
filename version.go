package zid

import "fmt"

const (
	// Maj is the major version number (updated on breaking release).
	Maj = 0
	// Min is the minor version number (updated on minor releases).
	Min = 1
	// Fix is the patch number (updated on bugfix releases).
	Fix = 0
)

// GitCommit is set by build flags.
var GitCommit = ""

// Version returns the string displayed by the binaries.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d", Maj, Min, Fix)
	if GitCommit != "" {
		v += " " + GitCommit
	}
	return v
}
