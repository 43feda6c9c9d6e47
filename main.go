// Entrypoint for the Cobra CLI; delegates to cmd.Execute.

package main

import (
	"github.com/kernelshap/kernelshap/cmd"
)

func main() {
	cmd.Execute()
}
