// Command cmmcheck runs the C-- semantic analysis core over a program's
// JSON-encoded AST and reports every diagnostic it finds.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/cmm/cmd/cmmcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
