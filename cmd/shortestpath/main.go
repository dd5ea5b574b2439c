// Command shortestpath builds the six-vertex sample graph and prints the
// shortest path between two of its vertices (0 → 4 by default).
package main

import "github.com/katalvlaran/shortpath/cmd/shortestpath/commands"

func main() {
	commands.Execute()
}
