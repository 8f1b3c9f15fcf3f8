package main

import "github.com/StephanGoldberg/startup-launch-checker/cmd"

// execCmd is swapped out in tests.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
