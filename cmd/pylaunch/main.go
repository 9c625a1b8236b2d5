// Where: cmd/pylaunch/main.go
// What: CLI entrypoint.
// Why: Bootstrap a Python project environment and hand off to its entry point.
package main

import (
	"fmt"
	"os"

	"github.com/tahanili/pylaunch/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Args[1:], deps))
}
