package main

import (
	"fmt"
	"os"

	"github.com/adk-agents/adk-bootstrap/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
