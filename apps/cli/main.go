package main

import "github.com/avolkov/reqq/apps/cli/cmd"

// set via -ldflags at release time
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cmd.Execute(version, buildTime)
}
