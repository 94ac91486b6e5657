package main

import "github.com/laserwatch/laserwatch/cmd"

// main is the entry point of the laserwatch CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
