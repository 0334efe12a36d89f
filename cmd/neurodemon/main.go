// neurodemon is the terminal companion for the NeuroDemon platform
package main

import (
	"os"

	"github.com/neurodemon/neurodemon/cmd/neurodemon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
