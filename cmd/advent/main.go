// Command advent solves the day 1 through 16 holiday programming puzzles.
package main

import "github.com/mesh-intelligence/advent/internal/cli"

func main() {
	cli.Execute()
}
