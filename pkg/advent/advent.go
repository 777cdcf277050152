// Package advent carries module-level metadata for the advent solvers.
package advent

// Version is the released version of the advent CLI.
const Version = "0.1.0"

// ModulePath is the Go module path, reported by the version command.
const ModulePath = "github.com/mesh-intelligence/advent"
