// Package types defines the Solver interface, the Answer and Result values,
// run configuration, and the standard errors shared by every puzzle solver.
package types
