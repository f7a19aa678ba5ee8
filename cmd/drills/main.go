// Command drills runs small practice drills on validated integer input.
package main

import (
	"os"

	"github.com/roach88/drills/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
