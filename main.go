package main

import (
	"os"

	"github.com/boolean-maybe/todo/internal/cli"
)

// main runs the todo command line.
func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
