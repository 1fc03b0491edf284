// Command noslc type-checks nosl shader source files and reports
// diagnostics, optionally printing a reconstructed program tree.
package main

import (
	"os"

	"github.com/madmann91/nosl/cmd/noslc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
