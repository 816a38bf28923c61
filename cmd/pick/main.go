package main

import (
	"os"

	"github.com/roach88/pick/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
