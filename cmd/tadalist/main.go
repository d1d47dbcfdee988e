package main

import (
	"os"

	"github.com/idilsaglam/tadalist/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], &cli.App{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}))
}
