package main

import (
	"fmt"
	"os"

	"github.com/colossus-credit/docs/cmd/apidocs/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
