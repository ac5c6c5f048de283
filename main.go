// The main package for the econodeal executable.
package main

import (
	"os"

	"github.com/Olivier-cousineau/econo-econo/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library and propagates
// the command's exit code to the process.
func main() {
	os.Exit(cmd.Execute())
}
