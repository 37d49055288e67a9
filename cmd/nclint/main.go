package main

import (
	"os"

	"github.com/mujasoft/NaturalCommitLint/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
