// ABOUTME: Entry point for the verleih CLI
// ABOUTME: Terminal client for the brewery equipment rental backend

package main

import (
	"fmt"
	"os"

	"github.com/holgerweigert/verleih/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
