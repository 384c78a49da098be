// Where: cmd/glyreg/main.go
// What: CLI entrypoint.
// Why: Run glyreg commands with configured dependencies.
package main

import (
	"os"

	"github.com/ProskuraPD/glyreg/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
